// Package logger provides structured logging for minidb.
//
// It wraps the standard library log/slog:
//
//   - logger.go: handler construction, dynamic level, default logger
//   - redact.go: sensitive data redaction
//
// Record fields logged through domain.Record's LogValue pass through the
// same redaction as top-level attributes, so a field named "password"
// never reaches the log output in clear text.
package logger
