package element

import "errors"

var (
	// ErrNotInitialized signals value access on an element that was not built
	// through a package constructor.
	ErrNotInitialized = errors.New("element: not initialized")
	// ErrNoChoices signals construction of a choice-bearing element with an
	// empty choice set.
	ErrNoChoices = errors.New("element: choice set is empty")
	// ErrInvalidValue signals a value outside the element's allowed domain.
	ErrInvalidValue = errors.New("element: value outside allowed choices")
	// ErrUnknownChoice signals removal of a choice that is not present.
	ErrUnknownChoice = errors.New("element: no such choice")
	// ErrDuplicateChoice signals addition of a choice that already exists.
	ErrDuplicateChoice = errors.New("element: choice already exists")
	// ErrNoDialogs signals a browse or color-selection operation without a
	// dialog provider.
	ErrNoDialogs = errors.New("element: no dialog provider")
)
