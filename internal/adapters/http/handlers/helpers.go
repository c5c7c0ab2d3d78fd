package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/lead"
)

// Path parameter names shared with the router.
const (
	ParamBoardID  = "boardId"
	ParamColumnID = "columnId"
	ParamLeadID   = "leadId"
)

// pathParam returns a non-blank chi URL parameter or a validation error
// located on the path.
func pathParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(chi.URLParam(r, name))
	if v == "" {
		return "", domain.NewValidationError(dto.LocationPath+name, domain.MsgRequired)
	}
	return v, nil
}

// principal returns the caller resolved by the Principal middleware. A
// request that bypassed the middleware is forbidden.
func principal(r *http.Request) (domain.Principal, error) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		return domain.Principal{}, fmt.Errorf("no principal on request: %w", domain.ErrForbidden)
	}
	return p, nil
}

// parseMetricsFilter reads the boardId, agentId, dateFrom and dateTo query
// parameters. Dates are RFC 3339 timestamps.
func parseMetricsFilter(r *http.Request) (lead.Filter, error) {
	q := r.URL.Query()
	var f lead.Filter
	fields := make(map[string]string)

	if v := strings.TrimSpace(q.Get("boardId")); v != "" {
		f.BoardID = &v
	}
	if v := strings.TrimSpace(q.Get("agentId")); v != "" {
		f.AgentID = &v
	}
	for _, p := range []struct {
		key string
		dst **time.Time
	}{
		{key: "dateFrom", dst: &f.DateFrom},
		{key: "dateTo", dst: &f.DateTo},
	} {
		raw := q.Get(p.key)
		if raw == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			fields[dto.LocationQuery+p.key] = fmt.Sprintf("must be an RFC 3339 timestamp, got %q", raw)
			continue
		}
		ts = ts.UTC()
		*p.dst = &ts
	}

	if len(fields) > 0 {
		return lead.Filter{}, &domain.ValidationError{Fields: fields}
	}
	return f, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes. On failure it writes a 400 error response and
// returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
