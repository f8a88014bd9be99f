package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	appLogger "github.com/taskweb/frontend/pkg/logger"
)

// TaskAPI is the upstream task service as the handlers see it. Every method
// issues exactly one HTTP call; there is no retry and no caching.
type TaskAPI interface {
	List(ctx context.Context, q ListQuery) (*TaskPage, error)
	Get(ctx context.Context, id string) (*Task, error)
	Create(ctx context.Context, in TaskInput) (*Task, error)
	Update(ctx context.Context, id string, in TaskInput) (*Task, error)
	UpdateStatus(ctx context.Context, id, status string) (*Task, error)
	Delete(ctx context.Context, id string) error
}

// Client implements TaskAPI over fasthttp.
type Client struct {
	baseURL string
	http    *fasthttp.Client
	logger  *zap.Logger
}

// NewClient builds a Client for the given base URL. A nil httpClient falls
// back to a default fasthttp client; a nil logger disables logging.
func NewClient(baseURL string, httpClient *fasthttp.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &fasthttp.Client{Name: "task-frontend"}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		logger:  logger,
	}
}

func (c *Client) List(ctx context.Context, q ListQuery) (*TaskPage, error) {
	path := fmt.Sprintf("/api/v1/tasks?page=%d&size=%d", q.Page, q.Size)
	if q.Status != "" {
		path += "&status=" + q.Status
	}
	if q.Priority != "" {
		path += "&priority=" + q.Priority
	}
	if q.Search != "" {
		path += "&search=" + url.QueryEscape(q.Search)
	}

	var page TaskPage
	if err := c.call(ctx, fasthttp.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) Get(ctx context.Context, id string) (*Task, error) {
	var task Task
	if err := c.call(ctx, fasthttp.MethodGet, "/api/v1/tasks/"+id, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) Create(ctx context.Context, in TaskInput) (*Task, error) {
	var task Task
	if err := c.call(ctx, fasthttp.MethodPost, "/api/v1/tasks", in, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) Update(ctx context.Context, id string, in TaskInput) (*Task, error) {
	var task Task
	if err := c.call(ctx, fasthttp.MethodPut, "/api/v1/tasks/"+id, in, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id, status string) (*Task, error) {
	body := struct {
		Status string `json:"status"`
	}{Status: status}

	var task Task
	if err := c.call(ctx, fasthttp.MethodPatch, "/api/v1/tasks/"+id+"/status", body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.call(ctx, fasthttp.MethodDelete, "/api/v1/tasks/"+id, nil, nil)
}

// call performs the single upstream attempt and unwraps the response
// envelope into out. A non-2xx status becomes an APIError carrying the
// message from the error body when one is present.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		req.Header.SetContentType("application/json")
		req.SetBody(payload)
	}

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.http.DoDeadline(req, resp, deadline)
	} else {
		err = c.http.Do(req, resp)
	}
	if err != nil {
		return fmt.Errorf("upstream %s %s: %w", method, path, err)
	}

	status := resp.StatusCode()
	log := appLogger.WithRequestID(ctx, c.logger)
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: status, Message: errorMessage(resp.Body())}
		log.Warn("upstream call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("upstream %s %s: decode envelope: %w", method, path, err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("upstream %s %s: decode data: %w", method, path, err)
	}
	return nil
}

// errorMessage digs the optional message field out of an error body.
func errorMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Message
}
