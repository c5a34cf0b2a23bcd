package http

import (
	"customer-support-router/internal/model"
	"customer-support-router/internal/support"
)

// --- Request DTOs ---

type routeReq struct {
	Query string `json:"query" example:"Where is my refund for order #12345?"`
}

func (r routeReq) toInput() support.RouteInput {
	return support.RouteInput{Query: r.Query}
}

// --- Response DTOs ---

type routeResp struct {
	Route    string         `json:"route" example:"REFUND_REQUEST"`
	Response string         `json:"response" example:"Refund status for order 12345: Processed"`
	Data     map[string]any `json:"data"`
}

type classifyResp struct {
	Route    string `json:"route" example:"TECHNICAL_SUPPORT"`
	Fallback bool   `json:"fallback"`
	Reason   string `json:"reason,omitempty"`
}

func (h *handler) newRouteResp(o model.QueryResponse) routeResp {
	data := o.Data
	if data == nil {
		data = map[string]any{}
	}
	return routeResp{
		Route:    o.Route.String(),
		Response: o.Response,
		Data:     data,
	}
}

func (h *handler) newClassifyResp(o support.ClassifyOutput) classifyResp {
	return classifyResp{
		Route:    o.Route.String(),
		Fallback: o.Fallback,
		Reason:   o.Reason,
	}
}
