package submit

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores submission handlers by mode. Duplicate registrations are
// rejected so the first binding for a mode wins; the dispatcher relies on
// this to let options override the builtins.
type Registry struct {
	mu       sync.RWMutex
	handlers map[Mode]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Mode]Handler)}
}

// Register binds a handler to a mode. Registering a mode twice is an error.
func (r *Registry) Register(mode Mode, handler Handler) error {
	if mode == "" {
		return fmt.Errorf("submit: mode is required")
	}
	if handler == nil {
		return fmt.Errorf("submit: handler is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[mode]; exists {
		return fmt.Errorf("submit: mode %q already registered", mode)
	}
	r.handlers[mode] = handler
	return nil
}

// Get retrieves the handler bound to a mode.
func (r *Registry) Get(mode Mode) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, ok := r.handlers[mode]
	return handler, ok
}

// Has reports whether a mode is bound.
func (r *Registry) Has(mode Mode) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.handlers[mode]
	return ok
}

// Modes returns the sorted list of bound modes.
func (r *Registry) Modes() []Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	modes := make([]Mode, 0, len(r.handlers))
	for mode := range r.handlers {
		modes = append(modes, mode)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}
