package support

import (
	"context"

	"customer-support-router/internal/model"
)

// Handler answers queries of exactly one category.
// Recoverable failures are folded into the response; the error return is
// reserved for programmer errors.
type Handler interface {
	Category() model.IntentCategory
	Handle(ctx context.Context, query string) (model.QueryResponse, error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	// Route classifies the query and dispatches it to its handler.
	Route(ctx context.Context, input RouteInput) (model.QueryResponse, error)
	// Classify only classifies the query.
	Classify(ctx context.Context, input RouteInput) (ClassifyOutput, error)
}
