// ============================================================================
// easyfmt - String helpers and rendering post-processor
// ============================================================================
//
// Package:     pipeline
// Description: Compiling and running step chains
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package pipeline

import (
	"strings"

	mdwerror "github.com/msto63/easyfmt/foundation/core/error"
	mdwlog "github.com/msto63/easyfmt/foundation/core/log"
	"github.com/msto63/easyfmt/foundation/utils/stringx"
)

// StepSpec is one configured step: an op name and its arguments.
type StepSpec struct {
	Op   string   `mapstructure:"op"`
	Args []string `mapstructure:"args"`
}

// ParseStepSpec reads the short form "op arg1 arg2", split on runs of
// whitespace. Use the table form for arguments containing spaces.
func ParseStepSpec(s string) StepSpec {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return StepSpec{}
	}
	spec := StepSpec{Op: fields[0]}
	if len(fields) > 1 {
		spec.Args = fields[1:]
	}
	return spec
}

// String renders the spec in its short form.
func (s StepSpec) String() string {
	if len(s.Args) == 0 {
		return s.Op
	}
	return s.Op + " " + stringx.Join(s.Args, " ")
}

// Definition describes a named pipeline as found in configuration.
type Definition struct {
	Name        string     `mapstructure:"name"`
	Description string     `mapstructure:"description"`
	Steps       []StepSpec `mapstructure:"steps"`
}

type options struct {
	registry *Registry
	logger   *mdwlog.Logger
}

// Option configures compilation.
type Option func(*options)

// WithRegistry resolves ops against r instead of the default registry.
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithLogger logs compilation and runs to logger at debug level.
func WithLogger(logger *mdwlog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func buildOptions(opts []Option) options {
	o := options{registry: defaultRegistry, logger: mdwlog.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type compiledStep struct {
	spec StepSpec
	fn   Func
}

// Pipeline is a compiled chain of steps. It is immutable and safe for
// concurrent use.
type Pipeline struct {
	name        string
	description string
	steps       []compiledStep
	logger      *mdwlog.Logger
}

// Compile resolves every step of def and builds its function. Unknown ops,
// argument counts outside a step's bounds and rejected arguments all fail
// with INVALID_CONFIG.
func Compile(def Definition, opts ...Option) (*Pipeline, error) {
	o := buildOptions(opts)

	p := &Pipeline{
		name:        def.Name,
		description: def.Description,
		steps:       make([]compiledStep, 0, len(def.Steps)),
		logger:      o.logger.WithField("pipeline", def.Name),
	}

	for i, spec := range def.Steps {
		fn, err := compileStep(o.registry, spec)
		if err != nil {
			return nil, compileError(err, def.Name, i, spec)
		}
		p.steps = append(p.steps, compiledStep{spec: spec, fn: fn})
	}

	p.logger.Debug("pipeline compiled", mdwlog.Fields{"steps": len(p.steps)})
	return p, nil
}

func compileStep(r *Registry, spec StepSpec) (Func, error) {
	step, ok := r.Lookup(spec.Op)
	if !ok {
		return nil, mdwerror.Newf("unknown step %q", spec.Op)
	}
	if n := len(spec.Args); n < step.MinArgs || n > step.MaxArgs {
		return nil, mdwerror.Newf("step %q takes %s, got %d", spec.Op, arity(step), n).
			WithDetail("usage", step.Usage)
	}
	return step.Build(spec.Args)
}

func compileError(err error, pipeline string, index int, spec StepSpec) error {
	return mdwerror.Wrap(err, "invalid pipeline "+pipeline).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("pipeline.Compile").
		WithDetail("pipeline", pipeline).
		WithDetail("step", index).
		WithDetail("op", spec.Op)
}

func arity(s Step) string {
	switch {
	case s.MinArgs == s.MaxArgs && s.MinArgs == 0:
		return "no arguments"
	case s.MinArgs == s.MaxArgs && s.MinArgs == 1:
		return "1 argument"
	case s.MinArgs == s.MaxArgs:
		return stringx.ToString(s.MinArgs) + " arguments"
	default:
		return stringx.ToString(s.MinArgs) + " to " + stringx.ToString(s.MaxArgs) + " arguments"
	}
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string { return p.name }

// Description returns the pipeline description.
func (p *Pipeline) Description() string { return p.description }

// Steps returns the configured steps.
func (p *Pipeline) Steps() []StepSpec {
	specs := make([]StepSpec, len(p.steps))
	for i, s := range p.steps {
		specs[i] = s.spec
	}
	return specs
}

// Apply runs v through every step.
func (p *Pipeline) Apply(v Value) Value {
	for _, s := range p.steps {
		v = s.fn(v)
	}
	return v
}

// Run transforms input. A list left at the end is joined with
// ListSeparator.
func (p *Pipeline) Run(input string) string {
	timer := p.logger.StartTimer("pipeline.run").WithField("input_bytes", len(input))
	out := p.Apply(Scalar(input)).String()
	timer.Stop()
	return out
}
