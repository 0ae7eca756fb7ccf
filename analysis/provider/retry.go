package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// RetryPolicy controls WithRetry. Attempts counts the first call.
type RetryPolicy struct {
	Attempts        int
	RateLimitWaits  []time.Duration
	ServerErrorWait []time.Duration
}

// DefaultRetryPolicy returns a policy making attempts calls in total.
func DefaultRetryPolicy(attempts int) RetryPolicy {
	return RetryPolicy{
		Attempts:        attempts,
		RateLimitWaits:  []time.Duration{65 * time.Second, 100 * time.Second, 135 * time.Second},
		ServerErrorWait: []time.Duration{5 * time.Second, 30 * time.Second, 60 * time.Second},
	}
}

type retryModel struct {
	next   Model
	policy RetryPolicy
	logger *zap.Logger
	sleep  func(context.Context, time.Duration) error
}

// WithRetry wraps m so rate-limit and server errors are retried per policy.
// Other errors return immediately. A policy with fewer than two attempts
// returns m unchanged.
func WithRetry(m Model, policy RetryPolicy, logger *zap.Logger) Model {
	if policy.Attempts < 2 {
		return m
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &retryModel{next: m, policy: policy, logger: logger, sleep: sleepContext}
}

func (r *retryModel) Complete(ctx context.Context, req Request) (string, error) {
	var lastErr error
	for attempt := 0; attempt < r.policy.Attempts; attempt++ {
		out, err := r.next.Complete(ctx, req)
		if err == nil {
			return out, nil
		}
		lastErr = err

		var waits []time.Duration
		switch {
		case isRateLimitError(err):
			waits = r.policy.RateLimitWaits
		case isServerError(err):
			waits = r.policy.ServerErrorWait
		default:
			return "", err
		}
		if attempt == r.policy.Attempts-1 {
			break
		}
		wait := waitFor(waits, attempt)
		r.logger.Warn("model call failed, retrying",
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", r.policy.Attempts),
			zap.Duration("wait", wait),
			zap.Error(err))
		if err := r.sleep(ctx, wait); err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("failed after %d attempts: %w", r.policy.Attempts, lastErr)
}

// waitFor picks the wait for attempt, reusing the last entry past the end.
func waitFor(waits []time.Duration, attempt int) time.Duration {
	if len(waits) == 0 {
		return 0
	}
	if attempt >= len(waits) {
		return waits[len(waits)-1]
	}
	return waits[attempt]
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "resource_exhausted")
}

func isServerError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "500") ||
		strings.Contains(errStr, "502") ||
		strings.Contains(errStr, "503") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "server_error") ||
		strings.Contains(errStr, "overloaded")
}
