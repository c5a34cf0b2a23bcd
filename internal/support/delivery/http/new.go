package http

import (
	"customer-support-router/internal/support"
	"customer-support-router/pkg/log"
)

type handler struct {
	l  log.Logger
	uc support.UseCase
}

// New creates a new HTTP handler for the support domain.
func New(l log.Logger, uc support.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
