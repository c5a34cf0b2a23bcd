package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"customer-support-router/config"
	"customer-support-router/internal/classifier"
	"customer-support-router/internal/support"
	"customer-support-router/internal/support/handler"
	"customer-support-router/internal/support/usecase"
	"customer-support-router/pkg/helpdesk"
	"customer-support-router/pkg/llmprovider"
	"customer-support-router/pkg/log"
)

// App is the assembled support pipeline shared by the HTTP server and the CLI.
type App struct {
	UseCase    support.UseCase
	LLM        *llmprovider.Manager
	ReadyProbe func(ctx context.Context) error

	closers []func() error
}

// New wires providers, the refund store, the helpdesk client, the handlers
// and the router from cfg. Close releases what it opened.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	llm, err := newLLM(ctx, cfg.LLM, l)
	if err != nil {
		return nil, err
	}

	store, err := openRefundStore(ctx, cfg.Refund, l)
	if err != nil {
		return nil, err
	}

	hd, err := helpdesk.New(helpdesk.Config{
		TicketURL:        cfg.Helpdesk.TicketURL,
		KnowledgeBaseURL: cfg.Helpdesk.KnowledgeBaseURL,
		Breaker: helpdesk.BreakerConfig{
			Enabled:          cfg.Helpdesk.Breaker.Enabled,
			FailureThreshold: cfg.Helpdesk.Breaker.FailureThreshold,
			OpenTimeout:      cfg.Helpdesk.Breaker.OpenTimeout,
			Interval:         cfg.Helpdesk.Breaker.Interval,
		},
	})
	if err != nil {
		store.close()
		return nil, fmt.Errorf("helpdesk: %w", err)
	}

	cls := classifier.New(llm, classifier.Config{Temperature: cfg.Classifier.Temperature}, l)

	uc, err := usecase.New(cls, []support.Handler{
		handler.NewRefundHandler(store.RefundStore, l),
		handler.NewTechSupportHandler(hd, handler.TechSupportConfig{
			ExternalTimeout:  cfg.Support.ExternalTimeout,
			FallbackTicketID: cfg.Support.FallbackTicketID,
			FallbackSolution: cfg.Support.FallbackSolution,
		}, l),
		handler.NewChatHandler(llm, handler.ChatConfig{
			Temperature:  cfg.Chat.Temperature,
			MaxTokens:    cfg.Chat.MaxTokens,
			FallbackText: cfg.Chat.FallbackText,
		}, l),
	}, l)
	if err != nil {
		store.close()
		return nil, err
	}

	return &App{
		UseCase:    uc,
		LLM:        llm,
		ReadyProbe: store.probe,
		closers:    []func() error{store.close},
	}, nil
}

// Close releases the datastore connections.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func newLLM(ctx context.Context, cfg config.LLMConfig, l log.Logger) (*llmprovider.Manager, error) {
	providers, warnings, err := llmprovider.InitializeProviders(&cfg)
	for _, w := range warnings {
		l.Warnf(ctx, "internal.app.newLLM: %s", w)
	}
	if err != nil {
		return nil, fmt.Errorf("llm providers: %w", err)
	}

	retryDelay, err := parseDuration(cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("llm.retry_delay: %w", err)
	}
	maxTotal, err := parseDuration(cfg.MaxTotalTimeout)
	if err != nil {
		return nil, fmt.Errorf("llm.max_total_timeout: %w", err)
	}

	for _, p := range providers {
		l.Infof(ctx, "LLM provider enabled: %s (%s)", p.Name(), p.Model())
	}

	return llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, l), nil
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
