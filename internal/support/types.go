package support

import "customer-support-router/internal/model"

// --- UseCase Inputs ---

type RouteInput struct {
	Query string
}

// --- UseCase Outputs ---

type ClassifyOutput struct {
	Route    model.IntentCategory
	Fallback bool
	Reason   string
}
