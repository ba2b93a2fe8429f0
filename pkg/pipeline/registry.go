// ============================================================================
// easyfmt - String helpers and rendering post-processor
// ============================================================================
//
// Package:     pipeline
// Description: Registry of named pipeline steps
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package pipeline

import (
	"sync"

	mdwerror "github.com/msto63/easyfmt/foundation/core/error"
	"github.com/msto63/easyfmt/foundation/utils/mapx"
)

// Func transforms a value. Funcs never fail; argument problems are caught
// when the step is built.
type Func func(Value) Value

// Builder creates the Func for one configured step from its arguments. The
// registry has already checked the argument count.
type Builder func(args []string) (Func, error)

// Step describes a named transformation available to pipelines.
type Step struct {
	// Name is the op used in pipeline definitions (e.g. "snake").
	Name string
	// Usage lists the arguments, e.g. "replace <from> <to>".
	Usage string
	// Description is a one-line summary shown by `easyfmt steps`.
	Description string
	// MinArgs and MaxArgs bound the number of arguments.
	MinArgs, MaxArgs int
	// Build creates the step function.
	Build Builder
}

// Registry holds steps by name. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	steps map[string]Step
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{steps: make(map[string]Step)}
}

// NewDefaultRegistry returns a registry holding the built-in steps.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, s := range builtinSteps() {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a step. Names must be unique.
func (r *Registry) Register(s Step) error {
	if s.Name == "" || s.Build == nil {
		return mdwerror.New("step needs a name and a builder").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("pipeline.Register").
			WithDetail("op", s.Name)
	}
	if s.MinArgs < 0 || s.MaxArgs < s.MinArgs {
		return mdwerror.Newf("step %q has invalid arity %d..%d", s.Name, s.MinArgs, s.MaxArgs).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("pipeline.Register").
			WithDetail("op", s.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.steps[s.Name]; exists {
		return mdwerror.Newf("step %q already registered", s.Name).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("pipeline.Register").
			WithDetail("op", s.Name)
	}
	r.steps[s.Name] = s
	return nil
}

// Lookup returns the step registered under name.
func (r *Registry) Lookup(name string) (Step, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.steps[name]
	return s, ok
}

// Names returns the sorted names of all registered steps.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return mapx.SortedKeys(r.steps)
}

// Steps returns all registered steps sorted by name.
func (r *Registry) Steps() []Step {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	steps := make([]Step, 0, len(names))
	for _, name := range names {
		if s, ok := r.steps[name]; ok {
			steps = append(steps, s)
		}
	}
	return steps
}

var defaultRegistry = NewDefaultRegistry()

// Register adds a step to the default registry.
func Register(s Step) error {
	return defaultRegistry.Register(s)
}

// Lookup finds a step in the default registry.
func Lookup(name string) (Step, bool) {
	return defaultRegistry.Lookup(name)
}

// Names returns the sorted step names of the default registry.
func Names() []string {
	return defaultRegistry.Names()
}

// DefaultRegistry returns the registry used when no other is configured.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
