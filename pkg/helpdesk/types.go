package helpdesk

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds the helpdesk endpoints and client tuning.
type Config struct {
	TicketURL        string
	KnowledgeBaseURL string
	HTTPClient       *http.Client
	Breaker          BreakerConfig
}

// BreakerConfig configures the per-endpoint circuit breakers.
// A breaker opens after FailureThreshold consecutive failures and stays open for OpenTimeout.
type BreakerConfig struct {
	Enabled          bool
	FailureThreshold uint32
	OpenTimeout      time.Duration
	Interval         time.Duration
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.TicketURL == "" {
		return fmt.Errorf("helpdesk: TicketURL is required")
	}
	if c.KnowledgeBaseURL == "" {
		c.KnowledgeBaseURL = c.TicketURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if c.Breaker.FailureThreshold == 0 {
		c.Breaker.FailureThreshold = DefaultFailureThreshold
	}
	if c.Breaker.OpenTimeout <= 0 {
		c.Breaker.OpenTimeout = DefaultOpenTimeout
	}
	if c.Breaker.Interval <= 0 {
		c.Breaker.Interval = DefaultInterval
	}
	return nil
}

type createTicketRequest struct {
	Description string `json:"description"`
}

type createTicketResponse struct {
	TicketID string `json:"ticket_id"`
}

type searchResponse struct {
	Solution string `json:"solution"`
}
