package usecase

import (
	"context"
	"fmt"
	"time"

	"customer-support-router/internal/model"
	"customer-support-router/internal/support"
	"customer-support-router/pkg/metrics"
)

const LogPrefixRoute = "internal.support.usecase.Route"

// Route classifies the query and hands it to the registered handler.
// Every query text, empty included, gets a response. The handler's response is
// returned as is; only an empty route is filled in.
func (uc *implUseCase) Route(ctx context.Context, input support.RouteInput) (model.QueryResponse, error) {
	started := time.Now()
	category := uc.classifier.Classify(ctx, input.Query)

	h, ok := uc.handlers[category]
	if !ok {
		uc.l.Errorf(ctx, "%s: no handler for %s", LogPrefixRoute, category)
		return model.QueryResponse{}, fmt.Errorf("%w: %s", support.ErrHandlerNotRegistered, category)
	}

	resp, err := h.Handle(ctx, input.Query)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %s handler: %v", LogPrefixRoute, category, err)
		return model.QueryResponse{}, err
	}
	if resp.Route == "" {
		resp.Route = category
	}

	uc.l.Infof(ctx, "%s: routed to %s", LogPrefixRoute, category)
	metrics.ObserveRoute(resp.Route.String(), started)
	return resp, nil
}

// Classify runs only the classifier.
func (uc *implUseCase) Classify(ctx context.Context, input support.RouteInput) (support.ClassifyOutput, error) {
	out := uc.classifier.Explain(ctx, input.Query)
	return support.ClassifyOutput{
		Route:    out.Intent,
		Fallback: out.Fallback,
		Reason:   out.Reason,
	}, nil
}
