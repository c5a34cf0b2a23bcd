package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "customer-support-router/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusBadRequest, "query is required")
	if err.Error() != "query is required" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.Code != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, err.Code)
	}

	wrapped := fmt.Errorf("bind: %w", err)
	var httpErr *pkgErrors.HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("expected wrapped HTTPError to be found with errors.As")
	}
	if httpErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, httpErr.StatusCode)
	}
}
