// Package telemetry wires optional Sentry error reporting for the job.
package telemetry

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
)

// flushTimeout bounds the final event drain before the process exits.
const flushTimeout = 2 * time.Second

// Init initializes Sentry when a DSN is configured. Without one the job
// runs with reporting disabled.
func Init(dsn, environment string) error {
	if dsn == "" {
		slog.Warn("sentry is not configured, set SENTRY_DSN to enable error reporting")
		return nil
	}
	return sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
}

// CaptureError reports a stage failure. Safe to call when reporting is
// disabled or err is nil.
func CaptureError(err error) {
	if err == nil {
		return
	}
	sentry.CaptureException(err)
}

// Flush drains buffered events before process exit.
func Flush() {
	sentry.Flush(flushTimeout)
}
