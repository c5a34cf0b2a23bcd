package helpdesk

import "time"

const (
	DefaultTimeout          = 5 * time.Second
	DefaultFailureThreshold = 5
	DefaultOpenTimeout      = 30 * time.Second
	DefaultInterval         = 60 * time.Second
	// Requests let through while the breaker is half-open.
	halfOpenMaxRequests = 1
)

// Call names, used for breaker names and metric labels.
const (
	CallCreateTicket   = "create_ticket"
	CallSearchSolution = "search_solution"
)

const (
	ticketsPath = "/tickets"
	searchPath  = "/search"
)
