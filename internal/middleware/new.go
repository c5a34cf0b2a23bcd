package middleware

import (
	"customer-support-router/config"
	"customer-support-router/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter // nil when rate limiting is disabled
}

func New(l log.Logger, rl config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if rl.Enabled {
		mw.limiter = newRateLimiter(rl)
	}
	return mw
}
