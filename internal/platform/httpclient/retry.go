package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/logging"
)

// jitterFraction bounds the random spread applied to each delay (±25%).
const jitterFraction = 0.25

// policy is the unexported copy of config.RetryConfig.
type policy struct {
	attempts int
	initial  time.Duration
	max      time.Duration
	factor   float64
}

func policyFrom(cfg config.RetryConfig) policy {
	return policy{
		attempts: cfg.MaxAttempts,
		initial:  cfg.InitialInterval,
		max:      cfg.MaxInterval,
		factor:   cfg.Multiplier,
	}
}

// delay returns the wait before retry n (1 is the first retry): exponential
// growth capped at max, then jittered.
func (p policy) delay(n int) time.Duration {
	d := float64(p.initial) * math.Pow(p.factor, float64(n-1))
	d = math.Min(d, float64(p.max))
	d += d * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(math.Max(d, 0))
}

// doWithRetry writes the final response through out rather than returning it;
// the caller owns its body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, out **http.Response) error {
	if c.retry.attempts < 1 {
		return fmt.Errorf("httpclient: retry attempts must be >= 1, got %d", c.retry.attempts)
	}

	payload, err := snapshotBody(req)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := range c.retry.attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, lastErr); err != nil {
				return err
			}
		}
		if payload != nil {
			req.Body = io.NopCloser(bytes.NewReader(payload))
			req.ContentLength = int64(len(payload))
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			if !isRetryable(err) {
				return err
			}
			continue
		}
		if !isRetryableStatus(resp.StatusCode) {
			*out = resp
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.peer)
		if attempt == c.retry.attempts-1 {
			*out = resp
			return lastErr
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	return lastErr
}

// snapshotBody consumes the request body so each attempt can replay it.
func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	wait := c.retry.delay(attempt)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("peer_service", c.peer),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.attempts),
		slog.Duration("backoff", wait),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// isRetryable treats everything except cancellation as transient.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports 429 and 5xx.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
