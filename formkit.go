// Package formkit assembles the toolkit's pieces behind a small facade:
// typed form elements (pkg/element), the form container (pkg/form), renderers
// (pkg/renderers/...) and the submission dispatcher (pkg/submit). The facade
// covers the common paths; callers with more specific needs use the packages
// directly.
package formkit

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/render"
	"github.com/goliatone/go-formkit/pkg/renderers/html"
	"github.com/goliatone/go-formkit/pkg/renderers/tui"
	"github.com/goliatone/go-formkit/pkg/submit"
)

// RenderOptions aliases render.Options for callers configuring a render
// through the root package.
type RenderOptions = render.Options

// NewRegistry builds a renderer registry pre-populated with the built-in
// renderers (tui, html).
func NewRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	htmlRenderer, err := html.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(htmlRenderer); err != nil {
		return nil, err
	}
	if err := registry.Register(tui.New()); err != nil {
		return nil, err
	}
	return registry, nil
}

// RenderHTML snapshots the form as HTML markup. It is the simplest entry
// point for callers that just want a page out of a form.
func RenderHTML(ctx context.Context, f *form.Form, opts ...render.Options) ([]byte, error) {
	renderer, err := html.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, f, firstOption(opts))
}

// RunTUI walks the form as an interactive terminal session and returns the
// aggregated values as JSON.
func RunTUI(ctx context.Context, f *form.Form, opts ...render.Options) ([]byte, error) {
	return tui.New().Render(ctx, f, firstOption(opts))
}

// Submit aggregates the form's current values and dispatches them once
// through the named mode.
func Submit(ctx context.Context, f *form.Form, mode submit.Mode, target string, opts ...submit.Option) (*submit.Result, error) {
	return f.Submit(ctx, mode, target, opts...)
}

// EmbeddedTemplates exposes the built-in HTML renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

func firstOption(opts []render.Options) render.Options {
	if len(opts) > 0 {
		return opts[0]
	}
	return render.Options{}
}
