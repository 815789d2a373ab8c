// Package html renders a form as a static HTML snapshot of its current
// state. Markup comes from an embedded pongo2 template; labels and help text
// are sanitized before they reach the template, field values rely on the
// template engine's escaping.
package html

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formkit/pkg/element"
	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/render"
)

const formTemplate = "templates/form.tmpl"

// Renderer implements render.Renderer for static HTML output.
type Renderer struct {
	tmpl   *pongo2.Template
	policy *bluemonday.Policy
}

// Option customises the HTML renderer.
type Option func(*config)

type config struct {
	templates fs.FS
}

// WithTemplates overrides the embedded template bundle. The bundle must
// contain templates/form.tmpl.
func WithTemplates(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// New constructs an HTML renderer, parsing the template bundle up front so
// template errors surface at construction rather than per render.
func New(opts ...Option) (*Renderer, error) {
	cfg := &config{templates: embeddedTemplates}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	set := pongo2.NewSet("formkit", pongo2.NewFSLoader(cfg.templates))
	tmpl, err := set.FromFile(formTemplate)
	if err != nil {
		return nil, fmt.Errorf("html: parse %s: %w", formTemplate, err)
	}

	return &Renderer{
		tmpl:   tmpl,
		policy: bluemonday.StrictPolicy(),
	}, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string { return "html" }

// ContentType reports the media type of Render output.
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render snapshots the form into markup. With opts.ReadOnly every control is
// rendered disabled.
func (r *Renderer) Render(ctx context.Context, f *form.Form, opts render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("html: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, errors.New("html: form is required")
	}

	title := opts.Title
	if title == "" {
		title = f.Title()
	}

	fields := make([]pongo2.Context, 0, len(f.Elements()))
	for _, el := range f.Elements() {
		field, err := r.fieldContext(el)
		if err != nil {
			return nil, fmt.Errorf("html: field %q: %w", el.Name(), err)
		}
		fields = append(fields, field)
	}

	out, err := r.tmpl.ExecuteBytes(pongo2.Context{
		"title":    r.policy.Sanitize(title),
		"fields":   fields,
		"readonly": opts.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("html: execute template: %w", err)
	}
	return out, nil
}

// fieldContext maps one element onto the template's field shape: a control
// discriminator plus the value slot that control reads.
func (r *Renderer) fieldContext(el element.Element) (pongo2.Context, error) {
	field := pongo2.Context{
		"name":    el.Name(),
		"kind":    string(el.Kind()),
		"label":   r.policy.Sanitize(el.Label()),
		"help":    r.policy.Sanitize(el.Help()),
		"control": "input",
		"input":   "text",
	}

	switch e := el.(type) {
	case *element.String:
		v, err := e.Value()
		if err != nil {
			return nil, err
		}
		field["value"] = v
	case *element.Int:
		v, err := e.Value()
		if err != nil {
			return nil, err
		}
		field["input"] = "number"
		field["value"] = strconv.Itoa(v)
	case *element.Float:
		v, err := e.Value()
		if err != nil {
			return nil, err
		}
		field["input"] = "number"
		field["value"] = strconv.FormatFloat(v, 'f', -1, 64)
	case *element.Bool:
		v, err := e.Value()
		if err != nil {
			return nil, err
		}
		field["control"] = "checkbox"
		field["checked"] = v
	case *element.List:
		raw, err := e.Text()
		if err != nil {
			return nil, err
		}
		field["value"] = raw
	case *element.Dict:
		raw, err := e.Text()
		if err != nil {
			return nil, err
		}
		field["value"] = raw
	case *element.Choice:
		v, err := e.Value()
		if err != nil {
			return nil, err
		}
		field["control"] = "select"
		field["options"] = optionContexts(e.Choices(), []string{v})
	case *element.Radio:
		v, err := e.Value()
		if err != nil {
			return nil, err
		}
		field["control"] = "radio"
		field["options"] = optionContexts(e.Choices(), []string{v})
	case *element.MultiChoice:
		v, err := e.Value()
		if err != nil {
			return nil, err
		}
		field["control"] = "select"
		field["multiple"] = true
		field["options"] = optionContexts(e.Choices(), v)
	case *element.File, *element.Directory, *element.Path:
		v, err := el.Get()
		if err != nil {
			return nil, err
		}
		field["value"] = v
	case *element.ColorPicker:
		v, err := e.Value()
		if err != nil {
			return nil, err
		}
		field["input"] = "color"
		field["value"] = v
	case *element.Color:
		v, err := e.Value()
		if err != nil {
			return nil, err
		}
		field["input"] = "color"
		field["value"] = v
	default:
		v, err := el.Get()
		if err != nil {
			return nil, err
		}
		field["value"] = fmt.Sprintf("%v", v)
	}

	return field, nil
}

func optionContexts(choices, selected []string) []pongo2.Context {
	chosen := make(map[string]struct{}, len(selected))
	for _, v := range selected {
		chosen[v] = struct{}{}
	}
	out := make([]pongo2.Context, 0, len(choices))
	for _, choice := range choices {
		_, isSelected := chosen[choice]
		out = append(out, pongo2.Context{
			"value":    choice,
			"selected": isSelected,
		})
	}
	return out
}
