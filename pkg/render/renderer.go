// Package render defines the renderer contract shared by every presentation
// of a form, plus a registry for discovering renderers by name. Renderers
// own all drawing; elements only expose typed values and change events.
package render

import (
	"context"

	"github.com/goliatone/go-formkit/pkg/form"
)

// Renderer turns a form into a byte representation. Interactive renderers
// (the tui package) collect user input into the form's elements while
// rendering; static renderers (the html package) snapshot the current state.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, f *form.Form, opts Options) ([]byte, error)
}
