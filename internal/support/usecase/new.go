package usecase

import (
	"fmt"

	"customer-support-router/internal/classifier"
	"customer-support-router/internal/model"
	"customer-support-router/internal/support"
	"customer-support-router/pkg/log"
)

// implUseCase is the private implementation of support.UseCase.
type implUseCase struct {
	classifier classifier.Classifier
	handlers   map[model.IntentCategory]support.Handler
	l          log.Logger
}

var _ support.UseCase = (*implUseCase)(nil)

// New creates the support router. The handler list must cover every intent
// category exactly once; the registry is fixed after construction.
func New(cls classifier.Classifier, handlers []support.Handler, l log.Logger) (*implUseCase, error) {
	registry := make(map[model.IntentCategory]support.Handler, len(handlers))
	for _, h := range handlers {
		c := h.Category()
		if _, dup := registry[c]; dup {
			return nil, fmt.Errorf("%w: %s", support.ErrDuplicateHandler, c)
		}
		registry[c] = h
	}

	for _, c := range model.AllCategories() {
		if _, ok := registry[c]; !ok {
			return nil, fmt.Errorf("%w: %s", support.ErrHandlerNotRegistered, c)
		}
	}

	return &implUseCase{
		classifier: cls,
		handlers:   registry,
		l:          l,
	}, nil
}
