package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support-router/internal/model"
	"customer-support-router/pkg/openai"
)

// completionServer answers every chat completion with reply.
func completionServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(openai.ChatResponse{
			Choices: []openai.Choice{{Message: openai.Message{Role: "assistant", Content: reply}}},
		})
	}))
}

func writeConfig(t *testing.T, llmURL string) string {
	t.Helper()
	content := fmt.Sprintf(`
llm:
  providers:
    - name: openai
      enabled: true
      priority: 1
      api_key: test-key
      base_url: %s
      model: gpt-test
      timeout: 5s
  retry_attempts: 1
  retry_delay: 10ms
helpdesk:
  ticket_url: http://127.0.0.1:1
support:
  external_timeout: 200ms
refund:
  backend: memory
  records:
    ORD123: approved
`, llmURL)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRouteCommand(t *testing.T) {
	srv := completionServer(t, "REFUND_REQUEST")
	defer srv.Close()
	cfgPath := writeConfig(t, srv.URL)

	out, err := execute(t, "--config", cfgPath, "--log-level", "error", "route", "What's", "the", "refund", "status", "for", "ORD123?")
	require.NoError(t, err)

	var resp model.QueryResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, model.IntentRefundRequest, resp.Route)
	assert.Equal(t, "Refund status for order ORD123: approved", resp.Response)
	assert.Equal(t, "approved", resp.Data[model.DataStatus])
}

func TestRouteCommandBlankQuery(t *testing.T) {
	srv := completionServer(t, "Hi there! How can I help?")
	defer srv.Close()
	cfgPath := writeConfig(t, srv.URL)

	out, err := execute(t, "--config", cfgPath, "--log-level", "error", "route", "   ")
	require.NoError(t, err)

	var resp model.QueryResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, model.IntentGeneralChitChat, resp.Route)
	assert.Equal(t, "Hi there! How can I help?", resp.Response)
}

func TestClassifyCommand(t *testing.T) {
	srv := completionServer(t, "technical_support")
	defer srv.Close()
	cfgPath := writeConfig(t, srv.URL)

	out, err := execute(t, "--config", cfgPath, "--log-level", "error", "classify", "The app keeps crashing on login")
	require.NoError(t, err)
	assert.Equal(t, "TECHNICAL_SUPPORT", strings.TrimSpace(out))
}

func TestClassifyCommandExplainFallback(t *testing.T) {
	srv := completionServer(t, "maybe refund")
	defer srv.Close()
	cfgPath := writeConfig(t, srv.URL)

	out, err := execute(t, "--config", cfgPath, "--log-level", "error", "classify", "--explain", "hello")
	require.NoError(t, err)
	assert.Equal(t, "GENERAL_CHIT_CHAT (fallback: unknown_label)", strings.TrimSpace(out))
}

func TestCommandsRequireQuery(t *testing.T) {
	_, err := execute(t, "route")
	assert.Error(t, err)

	_, err = execute(t, "classify")
	assert.Error(t, err)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "classify", "hi")
	assert.Error(t, err)
}
