package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as log attributes sorted by name. Values of
// the credential headers in logging.SensitiveHeaders are replaced.
// Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, len(keys))
	for i, key := range keys {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs[i] = slog.String(key, redacted)
			continue
		}
		attrs[i] = slog.String(key, strings.Join(headers[key], ","))
	}
	return attrs
}
