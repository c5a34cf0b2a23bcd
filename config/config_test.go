package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support-router/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFrom_FullFile(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "from-env")

	path := writeConfig(t, `
environment:
  name: staging
http_server:
  port: 9090
llm:
  retry_attempts: 1
  providers:
    - name: openai
      enabled: true
      priority: 1
      api_key: sk-test
      model: gpt-4o-mini
    - name: gemini
      enabled: true
      priority: 2
      api_key: ${TEST_GEMINI_KEY}
      model: gemini-2.5-flash
support:
  external_timeout: 2s
  fallback_ticket_id: MANUAL-1
helpdesk:
  ticket_url: http://tickets.local
refund:
  backend: memory
  records:
    ORD123: approved
`)

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment.Name)
	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	require.Len(t, cfg.LLM.Providers, 2)
	assert.Equal(t, "sk-test", cfg.LLM.Providers[0].APIKey)
	assert.Equal(t, "from-env", cfg.LLM.Providers[1].APIKey)
	assert.Equal(t, 1, cfg.LLM.RetryAttempts)

	assert.Equal(t, 2*time.Second, cfg.Support.ExternalTimeout)
	assert.Equal(t, "MANUAL-1", cfg.Support.FallbackTicketID)
	assert.Equal(t, "Please try restarting the application and clearing the cache.", cfg.Support.FallbackSolution)

	assert.Equal(t, "http://tickets.local", cfg.Helpdesk.TicketURL)
	assert.Equal(t, "http://tickets.local", cfg.Helpdesk.KnowledgeBaseURL, "knowledge base defaults to ticket url")

	// viper lower-cases map keys; consumers normalize.
	assert.Equal(t, "approved", cfg.Refund.Records["ord123"])
}

func TestLoadFrom_Defaults(t *testing.T) {
	path := writeConfig(t, `
llm:
  providers:
    - name: openai
      enabled: true
      priority: 1
      api_key: k
      model: m
`)

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 5*time.Second, cfg.Support.ExternalTimeout)
	assert.Equal(t, "TECH-PENDING", cfg.Support.FallbackTicketID)
	assert.Equal(t, config.RefundBackendMemory, cfg.Refund.Backend)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMin)
	assert.NotEmpty(t, cfg.Chat.FallbackText)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no providers", "environment:\n  name: x\n"},
		{"duplicate priority", `
llm:
  providers:
    - {name: openai, enabled: true, priority: 1, api_key: a, model: m}
    - {name: gemini, enabled: true, priority: 1, api_key: b, model: m}
`},
		{"redis without url", `
llm:
  providers:
    - {name: openai, enabled: true, priority: 1, api_key: a, model: m}
refund:
  backend: redis
`},
		{"unknown backend", `
llm:
  providers:
    - {name: openai, enabled: true, priority: 1, api_key: a, model: m}
refund:
  backend: dynamo
`},
	}

	t.Setenv("OPENAI_API_KEY", "")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadFrom(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
