// Package pipeline chains the stringx helpers and render post-processing
// into named, configurable text transformations.
//
// A pipeline is a list of steps. Each step names an op from a Registry and
// passes it arguments. Values flowing through a pipeline are either a single
// string or a list: split turns a string into a list, join turns it back,
// text steps map over list items and filter steps drop items.
//
// Pipelines are usually defined in the easyfmt configuration file:
//
//	[pipelines.const_names]
//	description = "comma separated words to CONSTANT_NAMES"
//	steps = [
//	  "split ,",
//	  "trim",
//	  "non_empty",
//	  "snake",
//	  "upper",
//	  { op = "join", args = ["\n"] },
//	]
//
// and loaded with LoadSet. Compile errors carry the INVALID_CONFIG code and
// the pipeline, step and op details of the offending step.
package pipeline
