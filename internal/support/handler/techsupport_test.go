package handler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support-router/internal/model"
	"customer-support-router/pkg/helpdesk"
	"customer-support-router/pkg/log"
)

func TestTechSupportHandler(t *testing.T) {
	tests := []struct {
		name           string
		hd             *mockHelpdesk
		wantTicketID   string
		wantSolution   string
		wantTicketFB   bool
		wantSolutionFB bool
	}{
		{
			name:         "both succeed",
			hd:           &mockHelpdesk{ticketID: "TECH-042", solution: "Update the app."},
			wantTicketID: "TECH-042",
			wantSolution: "Update the app.",
		},
		{
			name:         "ticket fails",
			hd:           &mockHelpdesk{ticketErr: errBackendDown, solution: "Update the app."},
			wantTicketID: DefaultFallbackTicketID,
			wantSolution: "Update the app.",
			wantTicketFB: true,
		},
		{
			name:           "solution fails",
			hd:             &mockHelpdesk{ticketID: "TECH-042", solutionErr: errBackendDown},
			wantTicketID:   "TECH-042",
			wantSolution:   DefaultFallbackSolution,
			wantSolutionFB: true,
		},
		{
			name:           "both fail",
			hd:             &mockHelpdesk{ticketErr: errBackendDown, solutionErr: helpdesk.ErrCircuitOpen},
			wantTicketID:   DefaultFallbackTicketID,
			wantSolution:   DefaultFallbackSolution,
			wantTicketFB:   true,
			wantSolutionFB: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTechSupportHandler(tt.hd, TechSupportConfig{}, log.NewNop())
			assert.Equal(t, model.IntentTechnicalSupport, h.Category())

			resp, err := h.Handle(context.Background(), "The app keeps crashing on login")
			require.NoError(t, err)

			assert.Equal(t, model.IntentTechnicalSupport, resp.Route)
			assert.Equal(t, tt.wantTicketID, resp.Data[model.DataTicketID])
			assert.Equal(t, tt.wantSolution, resp.Data[model.DataSolution])
			assert.Equal(t, tt.wantTicketFB, resp.Data[model.DataTicketFallback])
			assert.Equal(t, tt.wantSolutionFB, resp.Data[model.DataSolutionFallback])
			assert.Contains(t, resp.Response, tt.wantSolution)
			assert.Contains(t, resp.Response, tt.wantTicketID)
			assert.Equal(t, 1, tt.hd.ticketCalls)
			assert.Equal(t, 1, tt.hd.searchCalls)
		})
	}
}

func TestTechSupportHandlerSlowCallTimesOutAlone(t *testing.T) {
	hd := &mockHelpdesk{
		ticketID:    "TECH-042",
		ticketDelay: 5 * time.Second,
		solution:    "Update the app.",
	}
	h := NewTechSupportHandler(hd, TechSupportConfig{ExternalTimeout: 100 * time.Millisecond}, log.NewNop())

	started := time.Now()
	resp, err := h.Handle(context.Background(), "The app keeps crashing on login")
	elapsed := time.Since(started)

	require.NoError(t, err)
	assert.Less(t, elapsed, 2*time.Second)
	assert.Equal(t, DefaultFallbackTicketID, resp.Data[model.DataTicketID])
	assert.Equal(t, true, resp.Data[model.DataTicketFallback])
	assert.Equal(t, "Update the app.", resp.Data[model.DataSolution])
	assert.Equal(t, false, resp.Data[model.DataSolutionFallback])
}

func TestTechSupportHandlerRunsCallsConcurrently(t *testing.T) {
	hd := &mockHelpdesk{
		ticketID:    "TECH-042",
		ticketDelay: 300 * time.Millisecond,
		solution:    "Update the app.",
		searchDelay: 300 * time.Millisecond,
	}
	h := NewTechSupportHandler(hd, TechSupportConfig{ExternalTimeout: time.Second}, log.NewNop())

	started := time.Now()
	_, err := h.Handle(context.Background(), "crash")
	require.NoError(t, err)
	assert.Less(t, time.Since(started), 550*time.Millisecond)
}

func TestTechSupportHandlerCustomFallbacks(t *testing.T) {
	hd := &mockHelpdesk{ticketErr: errBackendDown, solutionErr: errBackendDown}
	h := NewTechSupportHandler(hd, TechSupportConfig{
		FallbackTicketID: "TECH-001",
		FallbackSolution: "Reinstall the app.",
	}, log.NewNop())

	resp, err := h.Handle(context.Background(), "crash")
	require.NoError(t, err)
	assert.Equal(t, "TECH-001", resp.Data[model.DataTicketID])
	assert.Equal(t, "Reinstall the app.", resp.Data[model.DataSolution])
}
