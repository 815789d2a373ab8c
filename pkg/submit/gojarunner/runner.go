// Package gojarunner implements submit.ScriptRunner on the goja JavaScript
// engine. It executes arbitrary user-supplied source with the full ambient
// privileges of the process, which is why the dispatcher only runs scripts
// when an integrator injects a runner explicitly.
package gojarunner

import (
	"context"
	"fmt"

	"github.com/dop251/goja"
)

const (
	// FormBinding is the reserved binding carrying the whole value mapping.
	FormBinding = "form"
	// ResultBinding names the binding whose value, if set by the script,
	// becomes the run result.
	ResultBinding = "result"
)

// Runner evaluates JavaScript with the form mapping exposed as bindings.
type Runner struct{}

// New creates a Runner.
func New() *Runner {
	return &Runner{}
}

// Run executes src on a fresh VM. Each mapping entry becomes a top-level
// binding and the whole mapping is available under the reserved form
// binding, which wins on name collisions. Context cancellation interrupts
// the VM. The script's result binding, when set, is exported and returned.
func (r *Runner) Run(ctx context.Context, src string, vars map[string]any) (any, error) {
	vm := goja.New()

	for name, value := range vars {
		if err := vm.Set(name, value); err != nil {
			return nil, fmt.Errorf("gojarunner: bind %q: %w", name, err)
		}
	}
	if err := vm.Set(FormBinding, vars); err != nil {
		return nil, fmt.Errorf("gojarunner: bind %q: %w", FormBinding, err)
	}

	if ctx != nil {
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				vm.Interrupt(ctx.Err())
			case <-done:
			}
		}()
	}

	if _, err := vm.RunString(src); err != nil {
		return nil, fmt.Errorf("gojarunner: run script: %w", err)
	}

	out := vm.Get(ResultBinding)
	if out == nil || goja.IsUndefined(out) || goja.IsNull(out) {
		return nil, nil
	}
	return out.Export(), nil
}
