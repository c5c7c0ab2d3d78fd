package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the credential-bearing HTTP headers (lowercase).
// The request logging middleware redacts them by header name; masq redacts
// attributes with the same names.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// ContactFields are lead attributes that identify a person. They are never
// written to logs; lead ids are logged instead.
var ContactFields = []string{"email", "phone"}

// redactRules is what masq hides: attributes by exact name or name prefix,
// and any string value matching a pattern regardless of its key.
var redactRules = struct {
	names    []string
	prefixes []string
	patterns []*regexp.Regexp
}{
	names:    []string{"password", "secret", "token"},
	prefixes: []string{"secret_", "api_key"},
	patterns: []*regexp.Regexp{
		// Bearer credentials.
		regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
		// Raw JWTs; ten characters per segment keeps version strings out.
		regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
		// Inline api_key=... / apikey: ...
		regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
		// Lead e-mail addresses that end up inside messages or errors.
		regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
	},
}

// newRedactAttr builds the masq ReplaceAttr hook installed by New.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range ContactFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range redactRules.names {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range redactRules.prefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range redactRules.patterns {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
