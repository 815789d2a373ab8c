package submit

import "errors"

var (
	// ErrTargetRequired signals an HTTP or RunCode dispatch without a target.
	// It is raised before any connection is attempted.
	ErrTargetRequired = errors.New("submit: target is required")
	// ErrScriptingDisabled signals a RunCode dispatch on a dispatcher that
	// was built without a ScriptRunner. Executing user-supplied source is a
	// capability integrators must opt into.
	ErrScriptingDisabled = errors.New("submit: script execution is not enabled")
	// ErrUnknownMode signals a dispatch for a mode with no registered handler.
	ErrUnknownMode = errors.New("submit: unknown mode")
)
