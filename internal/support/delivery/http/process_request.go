package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// processRouteReq binds the query body shared by the route and classify endpoints.
func (h *handler) processRouteReq(c *gin.Context) (routeReq, error) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.support.delivery.http.processRouteReq: %v", err)
		return req, errInvalidBody
	}
	if strings.TrimSpace(req.Query) == "" {
		return req, errQueryRequired
	}
	return req, nil
}
