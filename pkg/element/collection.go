package element

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

const listSeparator = ","

// List is an ordered sequence of strings edited through a single text entry.
// The storage cell is the comma-joined text, so entries containing the
// separator do not survive a round-trip. That is a deliberate carry-over of
// the storage format, not a bug to paper over.
type List struct {
	base
	raw string
}

// NewList builds a list element seeded with defaultValue.
func NewList(name string, defaultValue []string, opts ...Option) *List {
	return &List{
		base: newBase(name, KindList, opts),
		raw:  strings.Join(defaultValue, listSeparator),
	}
}

// Value splits the stored text on the separator. An empty cell yields a nil
// slice.
func (e *List) Value() ([]string, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	if e.raw == "" {
		return nil, nil
	}
	return strings.Split(e.raw, listSeparator), nil
}

// SetValue joins v into the storage cell. A nil slice clears the cell.
func (e *List) SetValue(v []string) error {
	if err := e.ready(); err != nil {
		return err
	}
	e.raw = strings.Join(v, listSeparator)
	e.notify()
	return nil
}

// Text returns the raw storage cell for entry controls.
func (e *List) Text() (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	return e.raw, nil
}

// SetText replaces the raw storage cell, as typed into the entry control.
func (e *List) SetText(raw string) error {
	if err := e.ready(); err != nil {
		return err
	}
	e.raw = raw
	e.notify()
	return nil
}

// Get implements Element.
func (e *List) Get() (any, error) {
	v, err := e.Value()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Dict is a string-keyed mapping edited through a single text entry holding
// the textual literal of the mapping. Values are stored as JSON and parsed
// back leniently (flow-style YAML such as {key: value} is accepted too, since
// that is what people type). Unparseable text yields an empty mapping rather
// than an error.
type Dict struct {
	base
	raw string
}

// NewDict builds a dict element seeded with defaultValue.
func NewDict(name string, defaultValue map[string]any, opts ...Option) *Dict {
	return &Dict{
		base: newBase(name, KindDict, opts),
		raw:  encodeMapping(defaultValue),
	}
}

// Value parses the stored text back into a mapping. Parse failures are
// swallowed and reported as an empty mapping.
func (e *Dict) Value() (map[string]any, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(e.raw)
	if trimmed == "" {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := yaml.Unmarshal([]byte(trimmed), &out); err != nil || out == nil {
		return map[string]any{}, nil
	}
	return out, nil
}

// SetValue stores the textual literal of v. A nil mapping stores "{}".
func (e *Dict) SetValue(v map[string]any) error {
	if err := e.ready(); err != nil {
		return err
	}
	e.raw = encodeMapping(v)
	e.notify()
	return nil
}

// Text returns the raw storage cell for entry controls.
func (e *Dict) Text() (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	return e.raw, nil
}

// SetText replaces the raw storage cell, as typed into the entry control.
func (e *Dict) SetText(raw string) error {
	if err := e.ready(); err != nil {
		return err
	}
	e.raw = raw
	e.notify()
	return nil
}

// Get implements Element.
func (e *Dict) Get() (any, error) {
	v, err := e.Value()
	if err != nil {
		return nil, err
	}
	return v, nil
}

func encodeMapping(v map[string]any) string {
	if len(v) == 0 {
		return "{}"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}
