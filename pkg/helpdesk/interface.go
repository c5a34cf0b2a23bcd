package helpdesk

import "context"

// IHelpdesk talks to the ticketing and knowledge-base APIs.
// Every call is a single attempt; callers decide what to do on failure.
type IHelpdesk interface {
	// CreateTicket opens a ticket and returns its id.
	CreateTicket(ctx context.Context, description string) (string, error)

	// SearchSolution returns the best knowledge-base answer for query.
	SearchSolution(ctx context.Context, query string) (string, error)
}

// New creates a new helpdesk client.
func New(cfg Config) (IHelpdesk, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &client{
		ticketURL:        cfg.TicketURL,
		knowledgeBaseURL: cfg.KnowledgeBaseURL,
		httpClient:       cfg.HTTPClient,
		ticketBreaker:    newBreaker(CallCreateTicket, cfg.Breaker),
		searchBreaker:    newBreaker(CallSearchSolution, cfg.Breaker),
	}, nil
}
