// Package acl is the anti-corruption layer in front of the identity service.
// It translates the service's session payloads and HTTP failures into domain
// types; payload translators live in acl/identity.
package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
)

// ErrTransport marks failures that never produced an HTTP response
// (breaker open, connection refused, timeout). It wraps domain.ErrUnavailable.
var ErrTransport = fmt.Errorf("identity transport: %w", domain.ErrUnavailable)

const maxErrorBodySize = 1 << 20

// problemDetail is the RFC 9457 body the identity service answers errors with.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a downstream error response to a domain error.
// 401 and 403 both mean the session was rejected and map to ErrForbidden.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)
	case code == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case code == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", code, detail)
	}
}

// IsTransport reports whether err came from a failed round trip rather than
// a downstream answer.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil || !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError strips the "body." location prefix to get field names.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		fields[strings.TrimPrefix(d.Location, "body.")] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
