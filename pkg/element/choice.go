package element

import (
	"fmt"
	"slices"
)

// choiceSet holds the ordered allowed choices shared by the choice-bearing
// variants.
type choiceSet struct {
	choices []string
}

// Choices returns a copy of the allowed choices in order.
func (s *choiceSet) Choices() []string {
	return slices.Clone(s.choices)
}

func (s *choiceSet) has(choice string) bool {
	return slices.Contains(s.choices, choice)
}

func (s *choiceSet) add(choice string) error {
	if s.has(choice) {
		return fmt.Errorf("%w: %q", ErrDuplicateChoice, choice)
	}
	s.choices = append(s.choices, choice)
	return nil
}

func (s *choiceSet) remove(choice string) error {
	idx := slices.Index(s.choices, choice)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownChoice, choice)
	}
	s.choices = slices.Delete(s.choices, idx, idx+1)
	return nil
}

// singleChoice implements the shared semantics of Choice and Radio: the value
// is always a member of the choice set, and removing the selected choice
// falls back to the first remaining choice, or empty when none remain.
type singleChoice struct {
	base
	choiceSet
	value string
}

func newSingleChoice(name string, kind Kind, choices []string, defaultValue string, opts []Option) (singleChoice, error) {
	if len(choices) == 0 {
		return singleChoice{}, fmt.Errorf("element %q: %w", name, ErrNoChoices)
	}
	c := singleChoice{
		base:      newBase(name, kind, opts),
		choiceSet: choiceSet{choices: slices.Clone(choices)},
	}
	if defaultValue == "" {
		c.value = c.choices[0]
		return c, nil
	}
	if !c.has(defaultValue) {
		return singleChoice{}, fmt.Errorf("element %q: %w: %q", name, ErrInvalidValue, defaultValue)
	}
	c.value = defaultValue
	return c, nil
}

// Value returns the currently selected choice.
func (e *singleChoice) Value() (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	return e.value, nil
}

// SetValue selects v. Values outside the choice set are rejected.
func (e *singleChoice) SetValue(v string) error {
	if err := e.ready(); err != nil {
		return err
	}
	if !e.has(v) {
		return fmt.Errorf("element %q: %w: %q", e.name, ErrInvalidValue, v)
	}
	e.value = v
	e.notify()
	return nil
}

// AddChoice appends a new choice. Duplicates are rejected.
func (e *singleChoice) AddChoice(choice string) error {
	if err := e.ready(); err != nil {
		return err
	}
	if err := e.add(choice); err != nil {
		return fmt.Errorf("element %q: %w", e.name, err)
	}
	e.notify()
	return nil
}

// RemoveChoice deletes a choice. Removing the current selection moves the
// selection to the first remaining choice, or empty when none remain.
func (e *singleChoice) RemoveChoice(choice string) error {
	if err := e.ready(); err != nil {
		return err
	}
	if err := e.remove(choice); err != nil {
		return fmt.Errorf("element %q: %w", e.name, err)
	}
	if e.value == choice {
		if len(e.choices) > 0 {
			e.value = e.choices[0]
		} else {
			e.value = ""
		}
	}
	e.notify()
	return nil
}

// ClearChoices removes every choice and empties the selection.
func (e *singleChoice) ClearChoices() error {
	if err := e.ready(); err != nil {
		return err
	}
	e.choices = nil
	e.value = ""
	e.notify()
	return nil
}

// Get implements Element.
func (e *singleChoice) Get() (any, error) {
	v, err := e.Value()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Choice is a single selection from a fixed set, rendered as a drop-down.
type Choice struct {
	singleChoice
}

// NewChoice builds a choice element. An empty choice set is rejected; an
// empty defaultValue selects the first choice.
func NewChoice(name string, choices []string, defaultValue string, opts ...Option) (*Choice, error) {
	core, err := newSingleChoice(name, KindChoice, choices, defaultValue, opts)
	if err != nil {
		return nil, err
	}
	return &Choice{singleChoice: core}, nil
}

// Radio is a single selection from a fixed set, rendered as a radio group.
// Semantics are identical to Choice; only the control differs.
type Radio struct {
	singleChoice
}

// NewRadio builds a radio element with the same rules as NewChoice.
func NewRadio(name string, choices []string, defaultValue string, opts ...Option) (*Radio, error) {
	core, err := newSingleChoice(name, KindRadio, choices, defaultValue, opts)
	if err != nil {
		return nil, err
	}
	return &Radio{singleChoice: core}, nil
}

// MultiChoice is a set of selections from a fixed set, rendered as a
// multi-select list. Unknown values passed to SetValue are silently dropped
// rather than rejected, mirroring how a list control ignores selections for
// rows it does not contain.
type MultiChoice struct {
	base
	choiceSet
	selected []string
}

// NewMultiChoice builds a multi-choice element. An empty choice set is
// rejected. Unknown entries in defaultValue are dropped.
func NewMultiChoice(name string, choices []string, defaultValue []string, opts ...Option) (*MultiChoice, error) {
	if len(choices) == 0 {
		return nil, fmt.Errorf("element %q: %w", name, ErrNoChoices)
	}
	e := &MultiChoice{
		base:      newBase(name, KindMultiChoice, opts),
		choiceSet: choiceSet{choices: slices.Clone(choices)},
	}
	e.selected = e.keep(defaultValue)
	return e, nil
}

// Value returns the current selection in choice order.
func (e *MultiChoice) Value() ([]string, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	return slices.Clone(e.selected), nil
}

// SetValue clears and re-applies the selection, silently ignoring values
// outside the choice set.
func (e *MultiChoice) SetValue(v []string) error {
	if err := e.ready(); err != nil {
		return err
	}
	e.selected = e.keep(v)
	e.notify()
	return nil
}

// AddChoice appends a new choice. Duplicates are rejected.
func (e *MultiChoice) AddChoice(choice string) error {
	if err := e.ready(); err != nil {
		return err
	}
	if err := e.add(choice); err != nil {
		return fmt.Errorf("element %q: %w", e.name, err)
	}
	e.notify()
	return nil
}

// RemoveChoice deletes a choice and drops it from the selection.
func (e *MultiChoice) RemoveChoice(choice string) error {
	if err := e.ready(); err != nil {
		return err
	}
	if err := e.remove(choice); err != nil {
		return fmt.Errorf("element %q: %w", e.name, err)
	}
	e.selected = e.keep(e.selected)
	e.notify()
	return nil
}

// ClearChoices removes every choice and empties the selection.
func (e *MultiChoice) ClearChoices() error {
	if err := e.ready(); err != nil {
		return err
	}
	e.choices = nil
	e.selected = nil
	e.notify()
	return nil
}

// Get implements Element.
func (e *MultiChoice) Get() (any, error) {
	v, err := e.Value()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// keep filters values down to members of the choice set, preserving choice
// order and dropping duplicates.
func (e *MultiChoice) keep(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	want := make(map[string]struct{}, len(values))
	for _, v := range values {
		want[v] = struct{}{}
	}
	var out []string
	for _, choice := range e.choices {
		if _, ok := want[choice]; ok {
			out = append(out, choice)
		}
	}
	return out
}
