package pipeline

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/easyfmt/foundation/core/error"
	mdwlog "github.com/msto63/easyfmt/foundation/core/log"
)

func steps(specs ...string) []StepSpec {
	out := make([]StepSpec, len(specs))
	for i, s := range specs {
		out[i] = ParseStepSpec(s)
	}
	return out
}

func run(t *testing.T, input string, specs ...string) string {
	t.Helper()
	p, err := Compile(Definition{Name: "test", Steps: steps(specs...)})
	require.NoError(t, err)
	return p.Run(input)
}

func TestBuiltinSteps(t *testing.T) {
	tests := []struct {
		name  string
		input string
		specs []string
		want  string
	}{
		{"trim", "  hi  ", []string{"trim"}, "hi"},
		{"trim chars", "--hi-+", []string{"trim -+"}, "hi"},
		{"trim_start", "  hi  ", []string{"trim_start"}, "hi  "},
		{"trim_end", "xxhixx", []string{"trim_end x"}, "xxhi"},
		{"upper", "MiXed", []string{"upper"}, "MIXED"},
		{"lower", "MiXed", []string{"lower"}, "mixed"},
		{"capitalize", "hello", []string{"capitalize"}, "Hello"},
		{"snake", "XMLHttpRequest", []string{"snake"}, "xml_http_request"},
		{"kebab", "myVariableName", []string{"kebab"}, "my-variable-name"},
		{"camel", "my_variable_name", []string{"camel"}, "myVariableName"},
		{"pascal", "my_variable_name", []string{"pascal"}, "MyVariableName"},
		{"title", "hello world", []string{"title"}, "Hello World"},
		{"shorten", "my::ns::Widget(42)", []string{"shorten"}, "Widget(42)"},
		{"render", "my::ns::Widget(42)", []string{"render sU"}, "WIDGET(42)"},
		{"replace", "a-b-c", []string{"replace - _"}, "a_b_c"},
		{"remove", "a-b-c", []string{"remove -"}, "abc"},
		{"substr", "hello", []string{"substr 1 3"}, "ell"},
		{"substr clamps", "hello", []string{"substr 3 99"}, "lo"},
		{"repeat", "ab", []string{"repeat 3"}, "ababab"},
		{"repeat zero", "ab", []string{"repeat 0"}, ""},
		{"scalar filter keeps", "Widget", []string{"starts_with W"}, "Widget"},
		{"scalar filter drops", "Widget", []string{"ends_with x"}, ""},
		{"ident scalar", "1abc", []string{"ident"}, ""},
		{"join scalar", "abc", []string{"join ,"}, "abc"},
		{"empty pipeline", "as is", nil, "as is"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(t, tt.input, tt.specs...))
		})
	}
}

func TestListSteps(t *testing.T) {
	tests := []struct {
		name  string
		input string
		specs []string
		want  string
	}{
		{"split upper join", "a,b,c", []string{"split ,", "upper", "join ,"}, "A,B,C"},
		{"trailing list joined by newline", "a,b", []string{"split ,"}, "a\nb"},
		{"join without separator", "a,b", []string{"split ,", "join"}, "ab"},
		{"filters", "alpha,beta,gamma,1x", []string{"split ,", "ident", "contains a", "ends_with a", "join ;"}, "alpha;beta;gamma"},
		{"non_empty", "a,, ,b", []string{"split ,", "non_empty", "join +"}, "a+b"},
		{"split flattens lists", "a_b,c_d", []string{"split ,", "split _", "join |"}, "a|b|c|d"},
		{"multi byte delimiter", "a::b::c", []string{"split ::", "join /"}, "a/b/c"},
		{"empty list joined", "xyz", []string{"split ,", "contains q", "join ,"}, ""},
		{"unique", "b,a,b,a", []string{"split ,", "unique", "join ,"}, "b,a"},
		{"reverse", "a,b,c", []string{"split ,", "reverse", "join ,"}, "c,b,a"},
		{"sort", "b,C,a", []string{"split ,", "sort", "join ,"}, "C,a,b"},
		{"first", "a,b,c", []string{"split ,", "first 2", "join ,"}, "a,b"},
		{"skip", "a,b,c", []string{"split ,", "skip 1", "join ,"}, "b,c"},
		{"skip past end", "a,b", []string{"split ,", "skip 5", "join ,"}, ""},
		{"scalar becomes list", "solo", []string{"reverse"}, "solo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(t, tt.input, tt.specs...))
		})
	}
}

func TestSplitUpperJoinRoundTrip(t *testing.T) {
	for _, input := range []string{"", "a", "a,b", ",a,,b,", "x,y,z"} {
		got := run(t, input, "split ,", "upper", "join ,")
		assert.Equal(t, strings.ToUpper(input), got, "input %q", input)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name  string
		specs []StepSpec
		step  int
		op    string
	}{
		{"unknown op", []StepSpec{{Op: "upper"}, {Op: "frob"}}, 1, "frob"},
		{"too many args", []StepSpec{{Op: "upper", Args: []string{"x"}}}, 0, "upper"},
		{"too few args", []StepSpec{{Op: "replace", Args: []string{"x"}}}, 0, "replace"},
		{"bad integer", []StepSpec{{Op: "trim"}, {Op: "repeat", Args: []string{"many"}}}, 1, "repeat"},
		{"repeat count too large", []StepSpec{{Op: "repeat", Args: []string{"4611686018427387904"}}}, 0, "repeat"},
		{"bad render spec", []StepSpec{{Op: "render", Args: []string{"sX"}}}, 0, "render"},
		{"empty op", []StepSpec{{}}, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(Definition{Name: "broken", Steps: tt.specs})
			require.Error(t, err)
			assert.Nil(t, p)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig), "code = %v", mdwerror.GetCode(err))

			var coded *mdwerror.Error
			require.ErrorAs(t, err, &coded)
			details := coded.Details()
			assert.Equal(t, "broken", details["pipeline"])
			assert.Equal(t, tt.step, details["step"])
			assert.Equal(t, tt.op, details["op"])
			assert.Equal(t, "pipeline.Compile", coded.Operation())
		})
	}
}

func TestRepeatLimit(t *testing.T) {
	_, err := Compile(Definition{Name: "big", Steps: steps("repeat 65537")})
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))

	var coded *mdwerror.Error
	require.ErrorAs(t, errors.Unwrap(err), &coded)
	assert.Equal(t, mdwerror.CodeInvalidInput, coded.Code())

	assert.Len(t, run(t, "ab", "repeat 65536"), 2*MaxRepeatCount)
}

func TestCompileErrorMessage(t *testing.T) {
	_, err := Compile(Definition{Name: "p", Steps: steps("substr 1")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `step "substr" takes 2 arguments, got 1`)
}

func TestPipelineAccessors(t *testing.T) {
	p, err := Compile(Definition{Name: "slug", Description: "URL slug", Steps: steps("trim", "replace - _")})
	require.NoError(t, err)

	assert.Equal(t, "slug", p.Name())
	assert.Equal(t, "URL slug", p.Description())
	assert.Equal(t, []StepSpec{{Op: "trim"}, {Op: "replace", Args: []string{"-", "_"}}}, p.Steps())
}

func TestApplyKeepsList(t *testing.T) {
	p, err := Compile(Definition{Name: "words", Steps: []StepSpec{
		{Op: "split", Args: []string{" "}},
		{Op: "capitalize"},
	}})
	require.NoError(t, err)

	v := p.Apply(Scalar("go is fun"))
	assert.True(t, v.IsList())
	assert.Equal(t, []string{"Go", "Is", "Fun"}, v.Items())
}

func TestRunLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Format: mdwlog.FormatLogfmt, Output: &buf})

	p, err := Compile(Definition{Name: "loud", Steps: steps("upper")}, WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, "HI", p.Run("hi"))

	out := buf.String()
	assert.Contains(t, out, `message="pipeline compiled"`)
	assert.Contains(t, out, `message="pipeline.run completed"`)
	assert.Contains(t, out, `pipeline="loud"`)
	assert.Contains(t, out, "input_bytes=2")
}

func TestConcurrentRun(t *testing.T) {
	p, err := Compile(Definition{Name: "c", Steps: steps("split ,", "snake", "join ;")})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "my_var;http_server", p.Run("myVar,HTTPServer"))
		}()
	}
	wg.Wait()
}

func TestParseStepSpec(t *testing.T) {
	assert.Equal(t, StepSpec{}, ParseStepSpec("   "))
	assert.Equal(t, StepSpec{Op: "upper"}, ParseStepSpec("upper"))
	assert.Equal(t, StepSpec{Op: "replace", Args: []string{"-", "_"}}, ParseStepSpec(" replace  - _ "))
	assert.Equal(t, "replace - _", ParseStepSpec("replace - _").String())
}
