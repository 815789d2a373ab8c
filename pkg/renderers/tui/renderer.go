// Package tui renders a form as an interactive terminal session: each element
// becomes a prompt, answers flow back into the element's typed cell, and the
// final aggregate is serialized as JSON. The prompt driver is swappable so
// sessions can be scripted in tests.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formkit/pkg/element"
	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/render"
)

// Renderer implements render.Renderer for terminal sessions.
type Renderer struct {
	driver   Driver
	dialogs  element.Dialogs
	swatched map[*element.ColorPicker]struct{}
}

// New constructs a TUI renderer with defaults (survey driver, prompt-backed
// dialogs).
func New(opts ...Option) *Renderer {
	r := &Renderer{
		driver:   newSurveyDriver(),
		swatched: make(map[*element.ColorPicker]struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.dialogs == nil {
		r.dialogs = NewPromptDialogs(r.driver)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string { return "tui" }

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string { return "application/json" }

// Render walks the form's elements in order, prompting for each one, and
// returns the aggregated values as JSON. With opts.ReadOnly the session only
// displays current values. A user interrupt surfaces as ErrAborted.
func (r *Renderer) Render(ctx context.Context, f *form.Form, opts render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, errors.New("tui: form is required")
	}

	title := opts.Title
	if title == "" {
		title = f.Title()
	}
	if title != "" {
		if err := r.driver.Info(ctx, title); err != nil {
			return nil, err
		}
	}

	for _, el := range f.Elements() {
		if opts.ReadOnly {
			if err := r.display(ctx, el); err != nil {
				return nil, err
			}
			continue
		}
		if err := r.prompt(ctx, el); err != nil {
			return nil, err
		}
	}

	return json.Marshal(f.Process(ctx))
}

func (r *Renderer) display(ctx context.Context, el element.Element) error {
	v, err := el.Get()
	if err != nil {
		return fmt.Errorf("tui: read %q: %w", el.Name(), err)
	}
	return r.driver.Info(ctx, fmt.Sprintf("%s: %v", el.Label(), v))
}

func (r *Renderer) prompt(ctx context.Context, el element.Element) error {
	switch e := el.(type) {
	case *element.String:
		return r.promptString(ctx, e)
	case *element.Int:
		return r.promptInt(ctx, e)
	case *element.Float:
		return r.promptFloat(ctx, e)
	case *element.Bool:
		return r.promptBool(ctx, e)
	case *element.List:
		return r.promptList(ctx, e)
	case *element.Dict:
		return r.promptDict(ctx, e)
	case *element.Choice:
		return r.promptSingleChoice(ctx, el, e.Choices(), e.Value, e.SetValue)
	case *element.Radio:
		return r.promptSingleChoice(ctx, el, e.Choices(), e.Value, e.SetValue)
	case *element.MultiChoice:
		return r.promptMultiChoice(ctx, e)
	case *element.File:
		return r.promptPath(ctx, e)
	case *element.Directory:
		return r.promptPath(ctx, e)
	case *element.Path:
		return r.promptPath(ctx, e)
	case *element.ColorPicker:
		return r.promptColorPicker(ctx, e)
	case *element.Color:
		return r.promptColor(ctx, e)
	default:
		// No control for this kind; show its current state instead.
		return r.display(ctx, el)
	}
}

func (r *Renderer) promptString(ctx context.Context, e *element.String) error {
	current, err := e.Value()
	if err != nil {
		return err
	}
	answer, err := r.driver.Input(ctx, InputConfig{
		Message: e.Label(),
		Default: current,
		Help:    e.Help(),
	})
	if err != nil {
		return err
	}
	return e.SetValue(answer)
}

func (r *Renderer) promptInt(ctx context.Context, e *element.Int) error {
	current, err := e.Value()
	if err != nil {
		return err
	}
	cfg := InputConfig{
		Message: e.Label(),
		Default: strconv.Itoa(current),
		Help:    e.Help(),
	}
	for {
		answer, err := r.driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			if infoErr := r.driver.Info(ctx, fmt.Sprintf("%q is not a whole number", answer)); infoErr != nil {
				return infoErr
			}
			continue
		}
		return e.SetValue(n)
	}
}

func (r *Renderer) promptFloat(ctx context.Context, e *element.Float) error {
	current, err := e.Value()
	if err != nil {
		return err
	}
	cfg := InputConfig{
		Message: e.Label(),
		Default: strconv.FormatFloat(current, 'f', -1, 64),
		Help:    e.Help(),
	}
	for {
		answer, err := r.driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
		if err != nil {
			if infoErr := r.driver.Info(ctx, fmt.Sprintf("%q is not a number", answer)); infoErr != nil {
				return infoErr
			}
			continue
		}
		return e.SetValue(n)
	}
}

func (r *Renderer) promptBool(ctx context.Context, e *element.Bool) error {
	current, err := e.Value()
	if err != nil {
		return err
	}
	answer, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: e.Label(),
		Default: current,
		Help:    e.Help(),
	})
	if err != nil {
		return err
	}
	return e.SetValue(answer)
}

func (r *Renderer) promptList(ctx context.Context, e *element.List) error {
	current, err := e.Text()
	if err != nil {
		return err
	}
	answer, err := r.driver.Input(ctx, InputConfig{
		Message: e.Label(),
		Default: current,
		Help:    helpOr(e.Help(), "Comma-separated values"),
	})
	if err != nil {
		return err
	}
	return e.SetText(answer)
}

func (r *Renderer) promptDict(ctx context.Context, e *element.Dict) error {
	current, err := e.Text()
	if err != nil {
		return err
	}
	answer, err := r.driver.Input(ctx, InputConfig{
		Message: e.Label(),
		Default: current,
		Help:    helpOr(e.Help(), `Mapping literal, e.g. {key: value}`),
	})
	if err != nil {
		return err
	}
	return e.SetText(answer)
}

func (r *Renderer) promptSingleChoice(ctx context.Context, el element.Element, choices []string, value func() (string, error), set func(string) error) error {
	current, err := value()
	if err != nil {
		return err
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      el.Label(),
		Options:      choices,
		DefaultIndex: indexOf(choices, current),
		Help:         el.Help(),
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(choices) {
		return fmt.Errorf("tui: %q: selection out of range", el.Name())
	}
	return set(choices[idx])
}

func (r *Renderer) promptMultiChoice(ctx context.Context, e *element.MultiChoice) error {
	current, err := e.Value()
	if err != nil {
		return err
	}
	choices := e.Choices()
	indices, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  e.Label(),
		Options:  choices,
		Defaults: indicesOf(choices, current),
		Help:     e.Help(),
	})
	if err != nil {
		return err
	}
	return e.SetValue(valuesAt(choices, indices))
}

// pathElement is the surface shared by File, Directory and Path that the
// prompt flow needs.
type pathElement interface {
	element.Element
	Value() (string, error)
	SetValue(string) error
	Browse(ctx context.Context, d element.Dialogs) error
}

func (r *Renderer) promptPath(ctx context.Context, e pathElement) error {
	browse, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Browse for %s?", e.Label()),
		Help:    e.Help(),
	})
	if err != nil {
		return err
	}
	if browse {
		return e.Browse(ctx, r.dialogs)
	}
	current, err := e.Value()
	if err != nil {
		return err
	}
	answer, err := r.driver.Input(ctx, InputConfig{
		Message: e.Label(),
		Default: current,
		Help:    e.Help(),
	})
	if err != nil {
		return err
	}
	return e.SetValue(answer)
}

func (r *Renderer) promptColor(ctx context.Context, e *element.Color) error {
	current, err := e.Value()
	if err != nil {
		return err
	}
	answer, err := r.driver.Input(ctx, InputConfig{
		Message: e.Label(),
		Default: current,
		Help:    helpOr(e.Help(), "Hex color, e.g. #336699"),
	})
	if err != nil {
		return err
	}
	return e.SetValue(answer)
}

func (r *Renderer) promptColorPicker(ctx context.Context, e *element.ColorPicker) error {
	r.watchSwatch(e)
	current, err := e.Value()
	if err != nil {
		return err
	}
	answer, err := r.driver.Input(ctx, InputConfig{
		Message: e.Label(),
		Default: current,
		Help:    helpOr(e.Help(), "Hex color, e.g. #336699"),
	})
	if err != nil {
		return err
	}
	return e.SetValue(answer)
}

// watchSwatch subscribes the picker once so every value change repaints the
// swatch, whatever triggered the change. The repaint runs under its own
// context: mutations can arrive long after the render that subscribed, so
// tying it to that render's context would leave the repaint cancelled.
func (r *Renderer) watchSwatch(e *element.ColorPicker) {
	if _, ok := r.swatched[e]; ok {
		return
	}
	r.swatched[e] = struct{}{}
	e.OnChange(func() {
		v, err := e.Value()
		if err != nil {
			return
		}
		_ = r.driver.Info(context.Background(), swatch(v))
	})
}

func swatch(hex string) string {
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   ")
	return block + " " + hex
}

func helpOr(help, fallback string) string {
	if help != "" {
		return help
	}
	return fallback
}
