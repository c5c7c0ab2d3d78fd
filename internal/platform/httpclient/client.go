// Package httpclient is the outbound HTTP client used to reach the identity
// service. Every request passes through, in order:
//
//	breaker -> rate limiter -> header propagation -> client span -> retry -> transport
//
// Usage:
//
//	c := httpclient.New(&cfg.Client, "identity-api", metrics, logger)
//	req, err := c.NewRequest(ctx, http.MethodGet, "/api/v1/sessions/current", nil)
//	resp, err := c.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/telemetry"
)

// Propagated header names.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request ID so outbound calls carry it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation ID so outbound calls carry it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// Client wraps http.Client with a circuit breaker, an optional token bucket,
// retries and tracing. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	base    *url.URL
	peer    string
	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter
	retry   policy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a Client from cfg. peer names the downstream service in spans,
// metrics and health output. A nil metrics disables metric recording.
func New(cfg *config.ClientConfig, peer string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		peer:    peer,
		retry:   policyFrom(cfg.Retry),
		metrics: metrics,
		logger:  logger,
	}

	if u, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/")); err == nil {
		c.base = u
	}

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		burst := rl.BurstSize
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), burst)
	}

	maxFailures := cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        peer,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return c
}

// NewRequest builds a request for path relative to the configured base URL.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	if c.base == nil || c.base.Host == "" {
		return nil, fmt.Errorf("httpclient: %s has no base url", c.peer)
	}
	target := c.base.JoinPath(path)
	if body == nil {
		body = http.NoBody
	}
	return http.NewRequestWithContext(ctx, method, target.String(), body)
}

// Do sends req. On a non-retryable status resp is returned with an open
// body. When retries run out on a retryable status both resp and err are
// non-nil. Breaker rejections and transport errors yield a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		propagateIDs(ctx, req.Header)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		req = req.WithContext(spanCtx)
		err := c.doWithRetry(spanCtx, req, &resp)

		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return struct{}{}, err
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// Name identifies the downstream service. With HealthCheck it satisfies
// ports.HealthChecker.
func (c *Client) Name() string {
	return c.peer
}

// CircuitBreakerState reports the breaker state as "closed", "half-open" or
// "open".
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// HealthCheck derives downstream health from the breaker without making a
// network call. Half-open reports degraded, open reports failing.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.peer)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.peer)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.peer, state)
	}
}

func propagateIDs(ctx context.Context, h http.Header) {
	if id, _ := ctx.Value(requestIDKey{}).(string); id != "" {
		h.Set(HeaderRequestID, id)
	}
	if id, _ := ctx.Value(correlationIDKey{}).(string); id != "" {
		h.Set(HeaderCorrelationID, id)
	}
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.GetTracerProvider().Tracer("httpclient").Start(ctx,
		"HTTP "+req.Method+" "+c.peer,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.Redacted()),
			attribute.String("peer.service", c.peer),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

// record runs outside the breaker so rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.peer),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
