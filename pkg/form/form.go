// Package form composes elements into an ordered container that aggregates
// their current values and submits the aggregate through a single dispatch
// action.
package form

import (
	"context"
	"log/slog"

	"github.com/goliatone/go-formkit/pkg/element"
	"github.com/goliatone/go-formkit/pkg/submit"
)

// Form owns an ordered sequence of elements. Element names are the keys of
// the aggregated mapping; duplicates are accepted (the later element wins in
// the aggregate) but flagged at add time so the ambiguity is visible.
type Form struct {
	title    string
	elements []element.Element
	logger   *slog.Logger
}

// Option configures a Form.
type Option func(*Form)

// WithTitle sets the display title renderers show above the form.
func WithTitle(title string) Option {
	return func(f *Form) {
		f.title = title
	}
}

// WithLogger overrides the logger used for aggregation diagnostics and the
// Log submission mode.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New builds an empty form.
func New(opts ...Option) *Form {
	f := &Form{logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Title reports the display title.
func (f *Form) Title() string { return f.title }

// Add appends elements in order. It never rejects or deduplicates names.
func (f *Form) Add(elems ...element.Element) {
	for _, el := range elems {
		if el == nil {
			continue
		}
		if f.hasName(el.Name()) {
			f.logger.Warn("duplicate element name, later value wins on submit",
				slog.String("name", el.Name()))
		}
		f.elements = append(f.elements, el)
	}
}

// AddAll appends a slice of elements in order.
func (f *Form) AddAll(elems []element.Element) {
	f.Add(elems...)
}

// Elements returns the owned elements in insertion order.
func (f *Form) Elements() []element.Element {
	out := make([]element.Element, len(f.elements))
	copy(out, f.elements)
	return out
}

// Names returns the element names in insertion order, first occurrence wins.
func (f *Form) Names() []string {
	seen := make(map[string]struct{}, len(f.elements))
	out := make([]string, 0, len(f.elements))
	for _, el := range f.elements {
		name := el.Name()
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Process reads every element's current value into a fresh mapping, in
// insertion order. An element whose read fails is logged and skipped; it
// never blocks collection of the rest.
func (f *Form) Process(ctx context.Context) map[string]any {
	values := make(map[string]any, len(f.elements))
	for _, el := range f.elements {
		v, err := el.Get()
		if err != nil {
			f.logger.WarnContext(ctx, "skipping element with failed value read",
				slog.String("name", el.Name()),
				slog.String("kind", string(el.Kind())),
				slog.Any("error", err))
			continue
		}
		values[el.Name()] = v
	}
	return values
}

// Submit aggregates the current values and dispatches them once per mode.
// Target carries the HTTP host for the HTTP modes and the source text for
// RunCode; the Log mode ignores it.
func (f *Form) Submit(ctx context.Context, mode submit.Mode, target string, opts ...submit.Option) (*submit.Result, error) {
	options := append([]submit.Option{submit.WithLogger(f.logger)}, opts...)
	d := submit.New(options...)
	payload := submit.Payload{
		Keys:   f.Names(),
		Values: f.Process(ctx),
	}
	return d.Dispatch(ctx, mode, target, payload)
}

func (f *Form) hasName(name string) bool {
	for _, el := range f.elements {
		if el.Name() == name {
			return true
		}
	}
	return false
}
