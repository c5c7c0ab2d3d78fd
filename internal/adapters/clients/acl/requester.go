package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/httpclient"
)

// Requester runs one JSON request/response exchange against the downstream
// service: body encoding, status validation, error translation, decoding
// and body cleanup.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do sends method path with header applied. reqBody is JSON encoded when
// non-nil. Any 2xx status is success, and respBody (when non-nil) receives
// the decoded payload. Other statuses go through TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, path string, header http.Header, reqBody, respBody any) error {
	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := r.client.NewRequest(ctx, method, path, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return r.execute(ctx, req, respBody)
}

// CircuitBreakerState exposes the underlying client's breaker state.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

func (r *Requester) execute(ctx context.Context, req *http.Request, respBody any) error {
	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				r.logger.WarnContext(ctx, "failed to close response body", slog.String("error", cerr.Error()))
			}
		}()
	}

	if err != nil {
		// Exhausted retries still hand back the last response; translate it.
		if resp != nil {
			return TranslateHTTPError(resp)
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, ErrTransport, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		r.logger.WarnContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}
	return nil
}
