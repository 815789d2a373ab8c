package tui

import "github.com/goliatone/go-formkit/pkg/element"

// Option customises the TUI renderer.
type Option func(*Renderer)

// WithDriver replaces the survey-backed prompt driver. Tests use this to run
// sessions against a scripted driver without a terminal.
func WithDriver(driver Driver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithDialogs replaces the dialogs used by path and color elements. The
// default asks through the prompt driver; hosts with native pickers can plug
// theirs in here.
func WithDialogs(dialogs element.Dialogs) Option {
	return func(r *Renderer) {
		if dialogs != nil {
			r.dialogs = dialogs
		}
	}
}
