// ============================================================================
// easyfmt - String helpers and rendering post-processor
// ============================================================================
//
// Package:     pipeline
// Description: Named pipeline sets loaded from configuration
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package pipeline

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/msto63/easyfmt/foundation/core/config"
	mdwerror "github.com/msto63/easyfmt/foundation/core/error"
	"github.com/msto63/easyfmt/foundation/utils/mapx"
)

// ConfigKey is the configuration table holding pipeline definitions.
const ConfigKey = "pipelines"

// Set is a collection of compiled pipelines keyed by name.
type Set struct {
	pipelines map[string]*Pipeline
}

// NewSet compiles every definition. Names must be unique and non-empty.
func NewSet(defs []Definition, opts ...Option) (*Set, error) {
	set := &Set{pipelines: make(map[string]*Pipeline, len(defs))}

	for _, def := range defs {
		if def.Name == "" {
			return nil, mdwerror.New("pipeline definition without a name").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("pipeline.NewSet")
		}
		if _, exists := set.pipelines[def.Name]; exists {
			return nil, mdwerror.Newf("pipeline %q defined twice", def.Name).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("pipeline.NewSet").
				WithDetail("pipeline", def.Name)
		}

		p, err := Compile(def, opts...)
		if err != nil {
			return nil, err
		}
		set.pipelines[def.Name] = p
	}
	return set, nil
}

// LoadSet decodes and compiles every table under pipelines.<name>. Steps
// may be tables ({ op = "replace", args = ["-", "_"] }) or short strings
// ("replace - _"). A configuration without pipelines yields an empty set.
func LoadSet(cfg *config.Config, opts ...Option) (*Set, error) {
	names := cfg.Keys(ConfigKey)
	defs := make([]Definition, 0, len(names))

	for _, name := range names {
		var def Definition
		if err := cfg.Decode(ConfigKey+"."+name, &def, StepSpecHook()); err != nil {
			return nil, mdwerror.Wrap(err, "failed to load pipeline "+name).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("pipeline.LoadSet").
				WithDetail("pipeline", name)
		}
		def.Name = name
		defs = append(defs, def)
	}

	return NewSet(defs, opts...)
}

// StepSpecHook lets a plain string decode into a StepSpec via
// ParseStepSpec.
func StepSpecHook() mapstructure.DecodeHookFunc {
	specType := reflect.TypeOf(StepSpec{})
	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != specType {
			return data, nil
		}
		return ParseStepSpec(data.(string)), nil
	}
}

// Get returns the pipeline called name.
func (s *Set) Get(name string) (*Pipeline, bool) {
	p, ok := s.pipelines[name]
	return p, ok
}

// Names returns the sorted pipeline names.
func (s *Set) Names() []string {
	return mapx.SortedKeys(s.pipelines)
}

// Len returns the number of pipelines.
func (s *Set) Len() int { return len(s.pipelines) }

// Run runs the named pipeline. Unknown names fail with NOT_FOUND.
func (s *Set) Run(name, input string) (string, error) {
	p, ok := s.Get(name)
	if !ok {
		return "", mdwerror.Newf("unknown pipeline %q", name).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("pipeline.Set.Run").
			WithDetail("pipeline", name).
			WithDetail("available", s.Names())
	}
	return p.Run(input), nil
}
