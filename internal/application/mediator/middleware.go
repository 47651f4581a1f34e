package mediator

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Logging returns middleware that logs every dispatch with the request
// type, outcome and duration, using the logger carried in the context.
func Logging() Middleware {
	return func(ctx context.Context, request Request, next HandlerFunc) (any, error) {
		logger := LoggerFromContext(ctx)
		start := time.Now()

		result, err := next(ctx, request)

		metadata := map[string]interface{}{
			"request":     fmt.Sprintf("%T", request),
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if err != nil {
			metadata["error"] = err.Error()
			logger.Log("ERROR", "dispatch failed", metadata)
		} else {
			logger.Log("DEBUG", "dispatch completed", metadata)
		}

		return result, err
	}
}

// Throttle returns middleware that waits for a token from the limiter
// before dispatching. If the context is cancelled while waiting, the
// dispatch fails with the context error and the handler never runs.
func Throttle(limiter *rate.Limiter) Middleware {
	return func(ctx context.Context, request Request, next HandlerFunc) (any, error) {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("dispatch throttled: %w", err)
		}
		return next(ctx, request)
	}
}
