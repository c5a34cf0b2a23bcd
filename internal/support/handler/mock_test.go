package handler

import (
	"context"
	"errors"
	"sync"
	"time"

	"customer-support-router/internal/support/repository"
	"customer-support-router/pkg/llmprovider"
)

type mockStore struct {
	records map[string]string
	err     error
}

func (m *mockStore) GetRefundStatus(ctx context.Context, orderID string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	status, ok := m.records[orderID]
	if !ok {
		return "", repository.ErrOrderNotFound
	}
	return status, nil
}

// mockHelpdesk answers each call after its delay, or fails when the error is set.
// A call that outlives its context returns the context error.
type mockHelpdesk struct {
	ticketID    string
	ticketErr   error
	ticketDelay time.Duration

	solution    string
	solutionErr error
	searchDelay time.Duration

	mu          sync.Mutex
	ticketCalls int
	searchCalls int
}

func (m *mockHelpdesk) CreateTicket(ctx context.Context, description string) (string, error) {
	m.mu.Lock()
	m.ticketCalls++
	m.mu.Unlock()
	if err := wait(ctx, m.ticketDelay); err != nil {
		return "", err
	}
	if m.ticketErr != nil {
		return "", m.ticketErr
	}
	return m.ticketID, nil
}

func (m *mockHelpdesk) SearchSolution(ctx context.Context, query string) (string, error) {
	m.mu.Lock()
	m.searchCalls++
	m.mu.Unlock()
	if err := wait(ctx, m.searchDelay); err != nil {
		return "", err
	}
	if m.solutionErr != nil {
		return "", m.solutionErr
	}
	return m.solution, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type mockProvider struct {
	text  string
	err   error
	calls int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, ProviderName: "mock", ModelName: "mock-1"}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-1" }

var errBackendDown = errors.New("connection refused")
