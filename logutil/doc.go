// Package logutil provides a structured logging abstraction built on top of slog.
//
// It wraps the standard library's slog package with convenience functions and
// environment-aware configuration for the urlsift tool and library.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("document scanned", "id", docID)
//	logutil.Info("scan completed", "duration", elapsed)
//	logutil.Warn("profile missing workers setting", "profile", name)
//	logutil.Error("scan failed", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set URLSIFT_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2026-01-15T10:30:00Z","level":"INFO","msg":"scan completed","duration":"1.5s"}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2026-01-15T10:30:00Z level=INFO msg="scan completed" duration=1.5s
package logutil
