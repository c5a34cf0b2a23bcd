package handler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"customer-support-router/internal/model"
	"customer-support-router/internal/support"
	"customer-support-router/pkg/helpdesk"
	"customer-support-router/pkg/log"
	"customer-support-router/pkg/metrics"
)

// TechSupportConfig holds the per-call timeout and the fallback values.
type TechSupportConfig struct {
	ExternalTimeout  time.Duration
	FallbackTicketID string
	FallbackSolution string
}

type techSupportHandler struct {
	hd  helpdesk.IHelpdesk
	cfg TechSupportConfig
	l   log.Logger
}

var _ support.Handler = (*techSupportHandler)(nil)

// NewTechSupportHandler creates the TECHNICAL_SUPPORT handler.
func NewTechSupportHandler(hd helpdesk.IHelpdesk, cfg TechSupportConfig, l log.Logger) support.Handler {
	if cfg.ExternalTimeout <= 0 {
		cfg.ExternalTimeout = DefaultExternalTimeout
	}
	if cfg.FallbackTicketID == "" {
		cfg.FallbackTicketID = DefaultFallbackTicketID
	}
	if cfg.FallbackSolution == "" {
		cfg.FallbackSolution = DefaultFallbackSolution
	}
	return &techSupportHandler{hd: hd, cfg: cfg, l: l}
}

func (h *techSupportHandler) Category() model.IntentCategory {
	return model.IntentTechnicalSupport
}

// Handle opens a ticket and searches the knowledge base at the same time.
// Each call has its own timeout and falls back independently.
func (h *techSupportHandler) Handle(ctx context.Context, query string) (model.QueryResponse, error) {
	var (
		wg                               sync.WaitGroup
		ticketID, solution               string
		ticketFallback, solutionFallback bool
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		ticketID, ticketFallback = h.createTicket(ctx, query)
	}()
	go func() {
		defer wg.Done()
		solution, solutionFallback = h.searchSolution(ctx, query)
	}()
	wg.Wait()

	return model.NewQueryResponse(model.IntentTechnicalSupport, fmt.Sprintf(msgTicketFooter, solution, ticketID), map[string]any{
		model.DataTicketID:         ticketID,
		model.DataSolution:         solution,
		model.DataTicketFallback:   ticketFallback,
		model.DataSolutionFallback: solutionFallback,
	}), nil
}

func (h *techSupportHandler) createTicket(ctx context.Context, query string) (string, bool) {
	callCtx, cancel := context.WithTimeout(ctx, h.cfg.ExternalTimeout)
	defer cancel()

	id, err := h.hd.CreateTicket(callCtx, query)
	if err != nil {
		h.l.Warnf(ctx, "%s: create ticket failed, using %s: %v", LogPrefixTechSupport, h.cfg.FallbackTicketID, err)
		metrics.ObserveFallback(metrics.ComponentTicket, fallbackReason(err))
		return h.cfg.FallbackTicketID, true
	}
	return id, false
}

func (h *techSupportHandler) searchSolution(ctx context.Context, query string) (string, bool) {
	callCtx, cancel := context.WithTimeout(ctx, h.cfg.ExternalTimeout)
	defer cancel()

	solution, err := h.hd.SearchSolution(callCtx, query)
	if err != nil {
		h.l.Warnf(ctx, "%s: search solution failed, using fallback: %v", LogPrefixTechSupport, err)
		metrics.ObserveFallback(metrics.ComponentSolution, fallbackReason(err))
		return h.cfg.FallbackSolution, true
	}
	return solution, false
}

func fallbackReason(err error) string {
	if errors.Is(err, helpdesk.ErrCircuitOpen) {
		return reasonCircuitOpen
	}
	return reasonCallFailed
}
