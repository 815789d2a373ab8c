package submit

import (
	"log/slog"
	"net/http"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithHTTPClient overrides the client used by the HTTP modes.
func WithHTTPClient(client *http.Client) Option {
	return func(d *Dispatcher) {
		if client != nil {
			d.client = client
		}
	}
}

// WithLogger overrides the logger used by the Log mode and for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithBodyFormat selects the serialization of HTTP request bodies.
func WithBodyFormat(format BodyFormat) Option {
	return func(d *Dispatcher) {
		if format != "" {
			d.format = format
		}
	}
}

// WithScriptRunner enables the RunCode mode with the supplied runner. Without
// this option RunCode dispatches fail with ErrScriptingDisabled.
func WithScriptRunner(runner ScriptRunner) Option {
	return func(d *Dispatcher) {
		d.runner = runner
	}
}

// WithHandler registers a custom handler for a mode, taking precedence over
// the built-in handler for that mode.
func WithHandler(mode Mode, handler Handler) Option {
	return func(d *Dispatcher) {
		if mode == "" || handler == nil {
			return
		}
		_ = d.handlers.Register(mode, handler)
	}
}
