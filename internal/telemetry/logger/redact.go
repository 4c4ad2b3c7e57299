package logger

import (
	"log/slog"
	"slices"
	"strings"
)

const redactedValue = "***REDACTED***"

// sensitiveKeys are lower-case fragments; an attribute or record field
// whose name contains one has its value masked.
var sensitiveKeys = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"apikey",
	"api_key",
	"credential",
	"authorization",
	"private_key",
}

// replaceAttr masks sensitive string values. Records are logged as groups
// of their fields, so field names are checked the same way as keys.
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	return redactSensitive(a)
}

func redactSensitive(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		if a.Value.String() != "" && IsSensitiveKey(a.Key) {
			a.Value = slog.StringValue(redactedValue)
		}
	case slog.KindGroup:
		group := slices.Clone(a.Value.Group())
		for i := range group {
			group[i] = redactSensitive(group[i])
		}
		a.Value = slog.GroupValue(group...)
	}
	return a
}

// IsSensitiveKey reports whether a key or field name looks sensitive.
func IsSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	return slices.ContainsFunc(sensitiveKeys, func(k string) bool {
		return strings.Contains(lower, k)
	})
}
