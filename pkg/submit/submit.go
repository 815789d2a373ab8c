// Package submit dispatches an aggregated form value mapping through exactly
// one terminal action: an HTTP request, an opt-in script execution, or a log
// write. Dispatch is single-shot; there is no multi-step submission or
// partial retry.
package submit

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
)

// Mode selects the submission action.
type Mode string

const (
	HTTPPost   Mode = "http-post"
	HTTPPut    Mode = "http-put"
	HTTPDelete Mode = "http-delete"
	HTTPPatch  Mode = "http-patch"
	RunCode    Mode = "run-code"
	Log        Mode = "log"
)

// httpMethod maps HTTP modes onto their verb.
func (m Mode) httpMethod() (string, bool) {
	switch m {
	case HTTPPost:
		return http.MethodPost, true
	case HTTPPut:
		return http.MethodPut, true
	case HTTPDelete:
		return http.MethodDelete, true
	case HTTPPatch:
		return http.MethodPatch, true
	default:
		return "", false
	}
}

// Payload is the aggregated form mapping plus the element insertion order,
// so serialized bodies stay deterministic.
type Payload struct {
	Keys   []string
	Values map[string]any
}

// Result carries whatever the dispatched action produced: the verbatim HTTP
// response body, or the script's result binding.
type Result struct {
	Body  []byte
	Value any
}

// ScriptRunner executes user-supplied source text with the form mapping
// exposed as bindings. Implementations decide the language; the gojarunner
// subpackage provides a JavaScript one. A dispatcher has no runner unless
// the integrator injects one, keeping dynamic execution off by default.
type ScriptRunner interface {
	Run(ctx context.Context, src string, vars map[string]any) (any, error)
}

// Handler performs the action behind one submission mode.
type Handler interface {
	Handle(ctx context.Context, target string, payload Payload) (*Result, error)
}

// HandlerFunc adapts plain functions to the Handler interface.
type HandlerFunc func(ctx context.Context, target string, payload Payload) (*Result, error)

// Handle executes the wrapped function.
func (fn HandlerFunc) Handle(ctx context.Context, target string, payload Payload) (*Result, error) {
	return fn(ctx, target, payload)
}

// Dispatcher routes a payload to the handler registered for a mode. The
// built-in modes are registered at construction; custom modes can be added
// through WithHandler.
type Dispatcher struct {
	client   *http.Client
	logger   *slog.Logger
	format   BodyFormat
	runner   ScriptRunner
	handlers *Registry
}

// New builds a dispatcher. Defaults: http.DefaultClient, slog.Default(),
// form-urlencoded bodies, scripting disabled.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		client:   http.DefaultClient,
		logger:   slog.Default(),
		format:   FormatFormURLEncoded,
		handlers: NewRegistry(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	d.registerBuiltins()
	return d
}

// Dispatch runs the single action behind mode. Target is the HTTP host for
// the HTTP modes, the source text for RunCode, and ignored for Log.
func (d *Dispatcher) Dispatch(ctx context.Context, mode Mode, target string, payload Payload) (*Result, error) {
	handler, ok := d.handlers.Get(mode)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return handler.Handle(ctx, target, payload)
}

// registerBuiltins wires the standard modes, skipping any mode an option
// already claimed so integrators can override builtins.
func (d *Dispatcher) registerBuiltins() {
	builtins := map[Mode]Handler{
		HTTPPost:   &httpHandler{d: d, mode: HTTPPost},
		HTTPPut:    &httpHandler{d: d, mode: HTTPPut},
		HTTPDelete: &httpHandler{d: d, mode: HTTPDelete},
		HTTPPatch:  &httpHandler{d: d, mode: HTTPPatch},
		RunCode:    &runCodeHandler{d: d},
		Log:        &logHandler{d: d},
	}
	for mode, handler := range builtins {
		if !d.handlers.Has(mode) {
			_ = d.handlers.Register(mode, handler)
		}
	}
}
