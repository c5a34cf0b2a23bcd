package memory

import (
	"strings"

	"customer-support-router/internal/support/repository"
)

type implRepository struct {
	records map[string]string
}

// New creates an in-memory RefundStore seeded with records.
// Order ids are stored upper-cased so lookups match extracted ids.
func New(records map[string]string) repository.RefundStore {
	normalized := make(map[string]string, len(records))
	for id, status := range records {
		normalized[normalizeID(id)] = status
	}
	return &implRepository{records: normalized}
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
