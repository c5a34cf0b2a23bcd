package helpdesk

import (
	"errors"

	"github.com/sony/gobreaker"
)

// breaker wraps a gobreaker.CircuitBreaker; a nil cb passes calls through.
type breaker struct {
	cb *gobreaker.CircuitBreaker
}

func newBreaker(name string, cfg BreakerConfig) *breaker {
	if !cfg.Enabled {
		return &breaker{}
	}
	threshold := cfg.FailureThreshold
	return &breaker{cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "helpdesk-" + name,
		MaxRequests: halfOpenMaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	})}
}

// do runs fn through the breaker. Rejections become ErrCircuitOpen.
func (b *breaker) do(fn func() (string, error)) (string, error) {
	if b.cb == nil {
		return fn()
	}

	out, err := b.cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", ErrCircuitOpen
	}
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

func (b *breaker) state() gobreaker.State {
	if b.cb == nil {
		return gobreaker.StateClosed
	}
	return b.cb.State()
}
