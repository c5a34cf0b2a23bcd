package helpdesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"customer-support-router/pkg/metrics"
)

type client struct {
	ticketURL        string
	knowledgeBaseURL string
	httpClient       *http.Client
	ticketBreaker    *breaker
	searchBreaker    *breaker
}

// CreateTicket sends POST {ticket_url}/tickets with {"description": ...}.
func (c *client) CreateTicket(ctx context.Context, description string) (string, error) {
	started := time.Now()
	id, err := c.ticketBreaker.do(func() (string, error) {
		body, err := json.Marshal(createTicketRequest{Description: description})
		if err != nil {
			return "", fmt.Errorf("helpdesk: failed to marshal request: %w", err)
		}

		endpoint := strings.TrimRight(c.ticketURL, "/") + ticketsPath
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("helpdesk: failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		var out createTicketResponse
		if err := c.do(req, &out); err != nil {
			return "", err
		}
		if out.TicketID == "" {
			return "", ErrEmptyTicketID
		}
		return out.TicketID, nil
	})
	metrics.ObserveExternalCall(CallCreateTicket, err, started)
	return id, err
}

// SearchSolution sends GET {knowledge_base_url}/search?q=...
func (c *client) SearchSolution(ctx context.Context, query string) (string, error) {
	started := time.Now()
	solution, err := c.searchBreaker.do(func() (string, error) {
		endpoint := strings.TrimRight(c.knowledgeBaseURL, "/") + searchPath + "?" + url.Values{"q": {query}}.Encode()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return "", fmt.Errorf("helpdesk: failed to create request: %w", err)
		}

		var out searchResponse
		if err := c.do(req, &out); err != nil {
			return "", err
		}
		if out.Solution == "" {
			return "", ErrEmptySolution
		}
		return out.Solution, nil
	})
	metrics.ObserveExternalCall(CallSearchSolution, err, started)
	return solution, err
}

// do sends req and decodes a 2xx JSON body into out.
func (c *client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("helpdesk: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("helpdesk: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("helpdesk: API error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("helpdesk: failed to parse response: %w", err)
	}
	return nil
}
