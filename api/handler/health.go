package handler

import (
	"encoding/json"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskweb/frontend/internal/infrastructure/monitor"
)

type HealthHandler struct {
	readiness *monitor.Readiness
	logger    *zap.Logger
}

func NewHealthHandler(readiness *monitor.Readiness, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{
		readiness: readiness,
		logger:    logger,
	}
}

// Check reports readiness. Once shutdown begins the probe answers DOWN so
// load balancers stop routing new traffic during the drain window.
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := "UP"
	code := fasthttp.StatusOK
	if !h.readiness.Ready() {
		status = "DOWN"
		code = fasthttp.StatusServiceUnavailable
	}

	payload := map[string]any{
		"status":    status,
		"timestamp": time.Now().UTC(),
	}

	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(code)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}
