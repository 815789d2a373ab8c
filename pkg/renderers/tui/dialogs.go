package tui

import (
	"context"

	"github.com/goliatone/go-formkit/pkg/element"
)

// PromptDialogs implements element.Dialogs over the prompt driver, standing
// in for the native OS pickers a desktop host would provide. An empty answer
// means the user cancelled.
type PromptDialogs struct {
	driver Driver
}

var _ element.Dialogs = (*PromptDialogs)(nil)

// NewPromptDialogs builds dialogs that ask through driver.
func NewPromptDialogs(driver Driver) *PromptDialogs {
	return &PromptDialogs{driver: driver}
}

// OpenFile asks for a file path. Empty input cancels.
func (d *PromptDialogs) OpenFile(ctx context.Context) (string, bool, error) {
	return d.ask(ctx, InputConfig{Message: "File path", Help: "Leave empty to cancel"})
}

// OpenDirectory asks for a directory path. Empty input cancels.
func (d *PromptDialogs) OpenDirectory(ctx context.Context) (string, bool, error) {
	return d.ask(ctx, InputConfig{Message: "Directory path", Help: "Leave empty to cancel"})
}

// ChooseColor asks for a hex color seeded with the current value. Empty input
// cancels, keeping the current color.
func (d *PromptDialogs) ChooseColor(ctx context.Context, current string) (string, bool, error) {
	return d.ask(ctx, InputConfig{Message: "Color (hex)", Default: current, Help: "Leave empty to cancel"})
}

func (d *PromptDialogs) ask(ctx context.Context, cfg InputConfig) (string, bool, error) {
	answer, err := d.driver.Input(ctx, cfg)
	if err != nil {
		return "", false, err
	}
	if answer == "" {
		return "", false, nil
	}
	return answer, true, nil
}
