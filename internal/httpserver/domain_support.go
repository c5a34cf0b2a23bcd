package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	supportHTTP "customer-support-router/internal/support/delivery/http"
)

// setupSupportDomain registers /api/v1/support/route and /api/v1/support/classify.
// The use case is built by the caller so the CLI can share it.
func (srv HTTPServer) setupSupportDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := supportHTTP.New(srv.l, srv.supportUC)
	supportHTTP.RegisterRoutes(api, h, srv.mw.RateLimit())

	srv.l.Infof(ctx, "Support domain registered")
	return nil
}
