package handler

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskweb/frontend/internal/view"
	"github.com/taskweb/frontend/pkg/httpcontext"
	"github.com/taskweb/frontend/web"
)

type HomeHandler struct {
	baseHandler
}

func NewHomeHandler(views *web.Renderer, adapter *httpcontext.Adapter, logger *zap.Logger) *HomeHandler {
	return &HomeHandler{
		baseHandler: newBaseHandler(views, adapter, logger),
	}
}

// Index renders the landing page. It makes no upstream call.
func (h *HomeHandler) Index(ctx *fasthttp.RequestCtx) {
	h.render(ctx, "home", view.HomePage{})
}
