// Package element defines the typed input elements that make up a form. Each
// variant owns a single strongly typed storage cell plus the operations the
// matching control needs (choice mutation, dialog-backed browsing, raw text
// access for entry widgets). Presentation is decoupled: elements never draw
// anything themselves, they emit change events that renderers subscribe to,
// so a rendered control can rebuild itself after any mutation.
package element

// Kind identifies the variant of a form element. Renderers use it to pick
// the control they build for the element.
type Kind string

const (
	KindString      Kind = "string"
	KindInt         Kind = "integer"
	KindFloat       Kind = "number"
	KindBool        Kind = "boolean"
	KindList        Kind = "list"
	KindDict        Kind = "dict"
	KindChoice      Kind = "choice"
	KindMultiChoice Kind = "multichoice"
	KindFile        Kind = "file"
	KindDirectory   Kind = "directory"
	KindPath        Kind = "path"
	KindRadio       Kind = "radio"
	KindColor       Kind = "color"
	KindColorPicker Kind = "colorpicker"
)

// Element is the contract shared by every form input. Name is the key the
// element's value appears under when the owning form aggregates values; it is
// not syntactically validated. Get exposes the current value for aggregation
// and fails with ErrNotInitialized on an element that was not built through
// one of the package constructors.
type Element interface {
	Name() string
	Kind() Kind
	Label() string
	Help() string
	Get() (any, error)
	OnChange(func())
}

// Option customises an element at construction time.
type Option func(*base)

// WithLabel sets the human facing label renderers display next to the
// control. Defaults to the element name.
func WithLabel(label string) Option {
	return func(b *base) {
		b.label = label
	}
}

// WithHelp attaches descriptive help text renderers may show under the
// control.
func WithHelp(help string) Option {
	return func(b *base) {
		b.help = help
	}
}

type base struct {
	name     string
	kind     Kind
	label    string
	help     string
	built    bool
	watchers []func()
}

func newBase(name string, kind Kind, opts []Option) base {
	b := base{
		name:  name,
		kind:  kind,
		built: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}
	return b
}

// Name reports the aggregation key of the element.
func (b *base) Name() string { return b.name }

// Kind reports the element variant.
func (b *base) Kind() Kind { return b.kind }

// Label reports the display label, falling back to the element name.
func (b *base) Label() string {
	if b.label != "" {
		return b.label
	}
	return b.name
}

// Help reports the optional help text.
func (b *base) Help() string { return b.help }

// OnChange subscribes fn to mutations of the element. Every setter and
// choice/dialog operation that changes observable state notifies all
// subscribers, in subscription order.
func (b *base) OnChange(fn func()) {
	if fn != nil {
		b.watchers = append(b.watchers, fn)
	}
}

func (b *base) notify() {
	for _, fn := range b.watchers {
		fn()
	}
}

// ready guards value access on elements that skipped construction (zero
// values). All constructors mark the element as built.
func (b *base) ready() error {
	if !b.built {
		return ErrNotInitialized
	}
	return nil
}
