package element

import (
	"context"
	"fmt"
)

// Dialogs abstracts the pickers the host environment provides. Every method
// reports ok=false when the user cancelled, which callers treat as a no-op.
// Implementations live with the renderers; the survey-backed one stands in
// for the native OS dialogs.
type Dialogs interface {
	OpenFile(ctx context.Context) (path string, ok bool, err error)
	OpenDirectory(ctx context.Context) (path string, ok bool, err error)
	ChooseColor(ctx context.Context, current string) (color string, ok bool, err error)
}

// pickFunc is the dialog-invocation strategy that distinguishes the file,
// directory and path variants sharing pathInput.
type pickFunc func(ctx context.Context, d Dialogs) (string, bool, error)

// pathInput is the shared entry-with-browse-button building block behind
// File, Directory and Path.
type pathInput struct {
	base
	value string
	pick  pickFunc
}

// Value returns the current path.
func (e *pathInput) Value() (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	return e.value, nil
}

// SetValue replaces the current path. Empty input clears the cell; the
// setter never fails on content.
func (e *pathInput) SetValue(v string) error {
	if err := e.ready(); err != nil {
		return err
	}
	e.value = v
	e.notify()
	return nil
}

// Browse invokes the variant's dialog strategy and overwrites the value with
// the chosen path. A cancelled dialog leaves the value unchanged.
func (e *pathInput) Browse(ctx context.Context, d Dialogs) error {
	if err := e.ready(); err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("element %q: %w", e.name, ErrNoDialogs)
	}
	path, ok, err := e.pick(ctx, d)
	if err != nil {
		return fmt.Errorf("element %q: browse: %w", e.name, err)
	}
	if !ok || path == "" {
		return nil
	}
	e.value = path
	e.notify()
	return nil
}

// Clear empties the path.
func (e *pathInput) Clear() error {
	if err := e.ready(); err != nil {
		return err
	}
	e.value = ""
	e.notify()
	return nil
}

// Reset is an alias for Clear.
func (e *pathInput) Reset() error {
	return e.Clear()
}

// Get implements Element.
func (e *pathInput) Get() (any, error) {
	v, err := e.Value()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// File is a filesystem path input whose browse action opens the file picker.
type File struct {
	pathInput
}

// NewFile builds a file element seeded with defaultValue.
func NewFile(name, defaultValue string, opts ...Option) *File {
	return &File{pathInput{
		base:  newBase(name, KindFile, opts),
		value: defaultValue,
		pick: func(ctx context.Context, d Dialogs) (string, bool, error) {
			return d.OpenFile(ctx)
		},
	}}
}

// Directory is a filesystem path input whose browse action opens the
// directory picker.
type Directory struct {
	pathInput
}

// NewDirectory builds a directory element seeded with defaultValue.
func NewDirectory(name, defaultValue string, opts ...Option) *Directory {
	return &Directory{pathInput{
		base:  newBase(name, KindDirectory, opts),
		value: defaultValue,
		pick: func(ctx context.Context, d Dialogs) (string, bool, error) {
			return d.OpenDirectory(ctx)
		},
	}}
}

// Path is a filesystem path input that accepts either a file or a directory:
// browsing tries the file picker first and falls back to the directory
// picker when the file dialog is cancelled.
type Path struct {
	pathInput
}

// NewPath builds a path element seeded with defaultValue.
func NewPath(name, defaultValue string, opts ...Option) *Path {
	return &Path{pathInput{
		base:  newBase(name, KindPath, opts),
		value: defaultValue,
		pick: func(ctx context.Context, d Dialogs) (string, bool, error) {
			path, ok, err := d.OpenFile(ctx)
			if err != nil || ok {
				return path, ok, err
			}
			return d.OpenDirectory(ctx)
		},
	}}
}
