package tui

import "errors"

// ErrAborted signals that the user interrupted the session (Ctrl+C). Callers
// should treat it as a clean cancellation rather than a failure.
var ErrAborted = errors.New("tui: aborted by user")
