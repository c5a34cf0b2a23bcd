package helpdesk

import "errors"

var (
	ErrEmptyTicketID = errors.New("helpdesk: response has no ticket_id")
	ErrEmptySolution = errors.New("helpdesk: response has no solution")
	ErrCircuitOpen   = errors.New("helpdesk: circuit breaker open")
)
