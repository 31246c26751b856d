package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/sitebind/sitebind"
)

// Ensure Gateway implements sitebind.Fetcher at compile time.
var _ sitebind.Fetcher = (*Gateway)(nil)

// Gateway retrieves markup via an ordered list of fetch strategies.
// Each attempt is bounded by a per-attempt timeout; a timeout or error is
// strategy failure and triggers the next strategy, not a run failure.
// Only when every strategy is exhausted does the gateway fail.
//
// The chain exists because relay services are individually unreliable;
// redundancy is the only mitigation available to a client with no direct
// network privilege to the target host. The gateway never retries a
// strategy that has failed for a URL; each job is attempted once per
// strategy.
type Gateway struct {
	strategies []sitebind.Fetcher
	timeout    time.Duration
	logger     *slog.Logger
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithAttemptTimeout bounds each strategy attempt.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithAttemptTimeout(d time.Duration) GatewayOption {
	return func(g *Gateway) {
		g.timeout = d
	}
}

// WithLogger sets the logger for per-strategy failures.
func WithLogger(logger *slog.Logger) GatewayOption {
	return func(g *Gateway) {
		g.logger = logger
	}
}

// NewGateway creates a Gateway over the given strategies, tried in order.
func NewGateway(strategies []sitebind.Fetcher, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		strategies: strategies,
		timeout:    DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Fetch tries each strategy in order until one returns markup.
// Fails with EUNAVAILABLE only when every strategy is exhausted.
func (g *Gateway) Fetch(ctx context.Context, url string) (string, error) {
	if len(g.strategies) == 0 {
		return "", sitebind.Errorf(sitebind.EINTERNAL, "fetch gateway has no strategies configured")
	}

	var lastErr error
	for i, strategy := range g.strategies {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
		html, err := strategy.Fetch(attemptCtx, url)
		cancel()

		if err == nil {
			return html, nil
		}
		lastErr = err
		g.logger.Debug("fetch strategy failed",
			"url", url,
			"strategy", i,
			"error", err,
		)
	}

	return "", sitebind.Errorf(sitebind.EUNAVAILABLE,
		"all fetch strategies failed for %s (the site may be blocking automated access): %v", url, lastErr)
}

// Close closes every strategy, returning the first error encountered.
func (g *Gateway) Close() error {
	var firstErr error
	for _, strategy := range g.strategies {
		if err := strategy.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
