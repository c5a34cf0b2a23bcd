package http

import (
	"github.com/gin-gonic/gin"

	"customer-support-router/pkg/response"
)

// Route godoc
// @Summary     Route a customer query
// @Description Classifies the query and answers it with the matching handler (refund, technical support or general chat).
// @Tags        Support
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Customer query"
// @Success     200  {object} routeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/support/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Route(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Route: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, h.newRouteResp(output))
}

// Classify godoc
// @Summary     Classify a customer query
// @Description Returns the intent category without running any handler.
// @Tags        Support
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Customer query"
// @Success     200  {object} classifyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/support/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Classify(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, h.newClassifyResp(output))
}
