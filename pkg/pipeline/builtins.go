// ============================================================================
// easyfmt - String helpers and rendering post-processor
// ============================================================================
//
// Package:     pipeline
// Description: Built-in steps over the stringx helpers and render options
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package pipeline

import (
	"strconv"

	mdwerror "github.com/msto63/easyfmt/foundation/core/error"
	"github.com/msto63/easyfmt/foundation/utils/slicex"
	"github.com/msto63/easyfmt/foundation/utils/stringx"
	"github.com/msto63/easyfmt/pkg/render"
)

// MaxRepeatCount bounds the count argument of the repeat step.
const MaxRepeatCount = 1 << 16

func builtinSteps() []Step {
	return []Step{
		trimStep("trim", "Strip leading and trailing characters (default whitespace)", stringx.Trim),
		trimStep("trim_start", "Strip leading characters (default whitespace)", stringx.TrimStart),
		trimStep("trim_end", "Strip trailing characters (default whitespace)", stringx.TrimEnd),

		textStep("upper", "ASCII upper case", stringx.ToUpper),
		textStep("lower", "ASCII lower case", stringx.ToLower),
		textStep("capitalize", "Upper-case the first byte", stringx.Capitalize),
		textStep("snake", "Convert to snake_case", stringx.ToSnakeCase),
		textStep("kebab", "Convert to kebab-case", stringx.ToKebabCase),
		textStep("camel", "Convert to camelCase", stringx.ToCamelCase),
		textStep("pascal", "Convert to PascalCase", stringx.ToPascalCase),
		textStep("title", "Capitalize every space separated word", stringx.ToTitleCase),
		textStep("shorten", "Drop namespace qualifiers up to the last ::", render.ShortenNamespace),

		{
			Name:        "render",
			Usage:       "render <spec>",
			Description: "Apply display options such as s, U or sL",
			MinArgs:     1,
			MaxArgs:     1,
			Build: func(args []string) (Func, error) {
				opts, rest := render.ParseOptions(args[0])
				if rest != "" {
					return nil, mdwerror.Newf("invalid render spec %q", args[0]).
						WithCode(mdwerror.CodeInvalidFormat).
						WithDetail("remainder", rest)
				}
				return mapText(func(s string) string { return render.PostProcess(s, opts) }), nil
			},
		},
		{
			Name:        "replace",
			Usage:       "replace <from> <to>",
			Description: "Replace every occurrence of from with to",
			MinArgs:     2,
			MaxArgs:     2,
			Build: func(args []string) (Func, error) {
				from, to := args[0], args[1]
				return mapText(func(s string) string { return stringx.Replace(s, from, to) }), nil
			},
		},
		{
			Name:        "remove",
			Usage:       "remove <target>",
			Description: "Delete every occurrence of target",
			MinArgs:     1,
			MaxArgs:     1,
			Build: func(args []string) (Func, error) {
				target := args[0]
				return mapText(func(s string) string { return stringx.Remove(s, target) }), nil
			},
		},
		{
			Name:        "substr",
			Usage:       "substr <start> <length>",
			Description: "Byte substring, clamped to the input",
			MinArgs:     2,
			MaxArgs:     2,
			Build: func(args []string) (Func, error) {
				start, err := intArg(args[0], "start")
				if err != nil {
					return nil, err
				}
				length, err := intArg(args[1], "length")
				if err != nil {
					return nil, err
				}
				return mapText(func(s string) string { return stringx.SubstrSafe(s, start, length) }), nil
			},
		},
		{
			Name:        "repeat",
			Usage:       "repeat <count>",
			Description: "Concatenate count copies (at most 65536)",
			MinArgs:     1,
			MaxArgs:     1,
			Build: func(args []string) (Func, error) {
				count, err := intArg(args[0], "count")
				if err != nil {
					return nil, err
				}
				if count > MaxRepeatCount {
					return nil, mdwerror.Newf("argument count must not exceed %d", MaxRepeatCount).
						WithCode(mdwerror.CodeInvalidInput).
						WithDetail("argument", "count").
						WithDetail("value", args[0])
				}
				return mapText(func(s string) string { return stringx.Repeat(s, count) }), nil
			},
		},
		{
			Name:        "split",
			Usage:       "split <delim>",
			Description: "Split into a list; lists are split item by item and flattened",
			MinArgs:     1,
			MaxArgs:     1,
			Build: func(args []string) (Func, error) {
				delim := args[0]
				return reshape(func(items []string) []string {
					return slicex.FlatMap(items, func(s string) []string { return stringx.Split(s, delim) })
				}), nil
			},
		},
		{
			Name:        "join",
			Usage:       "join [sep]",
			Description: "Join a list into one string (default separator is empty)",
			MinArgs:     0,
			MaxArgs:     1,
			Build: func(args []string) (Func, error) {
				sep := ""
				if len(args) == 1 {
					sep = args[0]
				}
				return func(v Value) Value {
					if !v.list {
						return v
					}
					return Scalar(stringx.Join(v.items, sep))
				}, nil
			},
		},

		listStep("unique", "Drop repeated items, keeping the first", slicex.Unique[string]),
		listStep("reverse", "Reverse the item order", slicex.Reverse[string]),
		listStep("sort", "Sort items byte-wise", slicex.Sort[string]),
		countStep("first", "Keep the first n items", slicex.Take[string]),
		countStep("skip", "Drop the first n items", slicex.Drop[string]),

		filterStep("contains", "contains <text>", "Keep items containing text", stringx.Contains),
		filterStep("starts_with", "starts_with <prefix>", "Keep items starting with prefix", stringx.StartsWith),
		filterStep("ends_with", "ends_with <suffix>", "Keep items ending with suffix", stringx.EndsWith),
		{
			Name:        "ident",
			Usage:       "ident",
			Description: "Keep items that are valid identifiers",
			Build: func(args []string) (Func, error) {
				return filter(stringx.IsIdent), nil
			},
		},
		{
			Name:        "non_empty",
			Usage:       "non_empty",
			Description: "Drop blank items",
			Build: func(args []string) (Func, error) {
				return filter(func(s string) bool { return !stringx.IsBlank(s) }), nil
			},
		},
	}
}

func textStep(name, description string, f func(string) string) Step {
	return Step{
		Name:        name,
		Usage:       name,
		Description: description,
		Build: func(args []string) (Func, error) {
			return mapText(f), nil
		},
	}
}

func trimStep(name, description string, trim func(string, stringx.Predicate) string) Step {
	return Step{
		Name:        name,
		Usage:       name + " [chars]",
		Description: description,
		MinArgs:     0,
		MaxArgs:     1,
		Build: func(args []string) (Func, error) {
			var p stringx.Predicate
			if len(args) == 1 {
				p = stringx.AnyOf(args[0])
			}
			return mapText(func(s string) string { return trim(s, p) }), nil
		},
	}
}

func listStep(name, description string, f func([]string) []string) Step {
	return Step{
		Name:        name,
		Usage:       name,
		Description: description,
		Build: func(args []string) (Func, error) {
			return reshape(f), nil
		},
	}
}

func countStep(name, description string, f func([]string, int) []string) Step {
	return Step{
		Name:        name,
		Usage:       name + " <n>",
		Description: description,
		MinArgs:     1,
		MaxArgs:     1,
		Build: func(args []string) (Func, error) {
			n, err := intArg(args[0], "n")
			if err != nil {
				return nil, err
			}
			return reshape(func(items []string) []string { return f(items, n) }), nil
		},
	}
}

func filterStep(name, usage, description string, match func(s, arg string) bool) Step {
	return Step{
		Name:        name,
		Usage:       usage,
		Description: description,
		MinArgs:     1,
		MaxArgs:     1,
		Build: func(args []string) (Func, error) {
			arg := args[0]
			return filter(func(s string) bool { return match(s, arg) }), nil
		},
	}
}

func intArg(arg, name string) (int, error) {
	n, err := strconv.Atoi(stringx.TrimSpace(arg))
	if err != nil {
		return 0, mdwerror.Wrap(err, "argument "+name+" must be an integer").
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("argument", name).
			WithDetail("value", arg)
	}
	return n, nil
}
