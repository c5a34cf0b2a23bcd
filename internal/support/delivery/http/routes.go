package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the support endpoints onto rg. Extra middleware, such
// as the rate limiter, runs before every support handler.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mws ...gin.HandlerFunc) {
	sup := rg.Group("/support", mws...)
	{
		sup.POST("/route", h.Route)
		sup.POST("/classify", h.Classify)
	}
}
