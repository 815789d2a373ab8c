package element

import (
	"context"
	"fmt"
)

// DefaultColor is the fallback applied when a color element receives an
// empty value.
const DefaultColor = "#FFFFFF"

// Color is a hex color input. Empty values normalize to DefaultColor instead
// of failing.
type Color struct {
	base
	value string
}

// NewColor builds a color element seeded with defaultValue, or DefaultColor
// when defaultValue is empty.
func NewColor(name, defaultValue string, opts ...Option) *Color {
	return &Color{base: newBase(name, KindColor, opts), value: normalizeColor(defaultValue)}
}

// Value returns the current hex color.
func (e *Color) Value() (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	return e.value, nil
}

// SetValue replaces the current color, normalizing empty input to
// DefaultColor.
func (e *Color) SetValue(v string) error {
	if err := e.ready(); err != nil {
		return err
	}
	e.value = normalizeColor(v)
	e.notify()
	return nil
}

// SelectColor invokes the color dialog seeded with the current value and
// overwrites the value with the chosen color. Cancelling the dialog leaves
// the value unchanged.
func (e *Color) SelectColor(ctx context.Context, d Dialogs) error {
	if err := e.ready(); err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("element %q: %w", e.name, ErrNoDialogs)
	}
	color, ok, err := d.ChooseColor(ctx, e.value)
	if err != nil {
		return fmt.Errorf("element %q: choose color: %w", e.name, err)
	}
	if !ok || color == "" {
		return nil
	}
	e.value = color
	e.notify()
	return nil
}

// Get implements Element.
func (e *Color) Get() (any, error) {
	v, err := e.Value()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ColorPicker is a color input with a live swatch: renderers redraw the
// swatch on every change event, so any mutation of the value refreshes it
// automatically.
type ColorPicker struct {
	Color
}

// NewColorPicker builds a color picker element seeded with defaultValue.
func NewColorPicker(name, defaultValue string, opts ...Option) *ColorPicker {
	return &ColorPicker{Color{
		base:  newBase(name, KindColorPicker, opts),
		value: normalizeColor(defaultValue),
	}}
}

func normalizeColor(v string) string {
	if v == "" {
		return DefaultColor
	}
	return v
}
