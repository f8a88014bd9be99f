package handler

import (
	"context"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskweb/frontend/pkg/httpcontext"
	"github.com/taskweb/frontend/web"
)

type baseHandler struct {
	views   *web.Renderer
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(views *web.Renderer, adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{views: views, adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

// render writes an HTML page. Render failures are the only path to a 500;
// upstream failures never reach here unmapped.
func (h baseHandler) render(ctx *fasthttp.RequestCtx, name string, data any) {
	ctx.Response.Header.SetContentType("text/html; charset=utf-8")
	ctx.SetStatusCode(fasthttp.StatusOK)
	if err := h.views.Render(ctx, name, data); err != nil {
		h.logger.Error("template render failed", zap.String("template", name), zap.Error(err))
		ctx.Response.ResetBody()
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}

func (h baseHandler) redirect(ctx *fasthttp.RequestCtx, location string) {
	ctx.Redirect(location, fasthttp.StatusFound)
}

// pathID returns the {id} route segment as sent, without parsing; the
// upstream API owns identifier validation.
func pathID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue("id").(string)
	return id
}

// queryInt parses a numeric query parameter, silently falling back on any
// non-numeric input.
func queryInt(args *fasthttp.Args, key string, fallback int) int {
	if v, err := strconv.Atoi(string(args.Peek(key))); err == nil {
		return v
	}
	return fallback
}
