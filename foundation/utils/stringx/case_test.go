// File: case_test.go
// Title: Unit Tests for Case Conversion Functions
// Description: Tests ASCII case conversion and naming convention helpers,
//              including acronyms, separators and non-ASCII pass-through.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2025-03-02 v0.3.0: ASCII-only expectations, Capitalize and acronym cases

package stringx

import (
	"testing"
)

func TestToUpperLower(t *testing.T) {
	tests := []struct {
		input string
		upper string
		lower string
	}{
		{"", "", ""},
		{"abc", "ABC", "abc"},
		{"MiXeD 123!", "MIXED 123!", "mixed 123!"},
		{"my::ns::Widget(42)", "MY::NS::WIDGET(42)", "my::ns::widget(42)"},
		{"straße", "STRAßE", "straße"},
	}

	for _, tt := range tests {
		if got := ToUpper(tt.input); got != tt.upper {
			t.Errorf("ToUpper(%q) = %q; want %q", tt.input, got, tt.upper)
		}
		if got := ToLower(tt.input); got != tt.lower {
			t.Errorf("ToLower(%q) = %q; want %q", tt.input, got, tt.lower)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"abc", "Abc"},
		{"Abc", "Abc"},
		{"aBC", "ABC"},
		{"1abc", "1abc"},
		{"é", "é"},
	}

	for _, tt := range tests {
		if got := Capitalize(tt.input); got != tt.expected {
			t.Errorf("Capitalize(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"camelCase", "myVariableName", "my_variable_name"},
		{"PascalCase", "MyVariableName", "my_variable_name"},
		{"acronym", "XMLHttpRequest", "xml_http_request"},
		{"spaces", "my variable name", "my_variable_name"},
		{"kebab", "my-variable-name", "my_variable_name"},
		{"already snake", "my_variable_name", "my_variable_name"},
		{"digits", "version2Beta", "version2_beta"},
		{"double separators", "a__b", "a_b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToSnakeCase(tt.input); got != tt.expected {
				t.Errorf("ToSnakeCase(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"myVariableName", "my-variable-name"},
		{"my_variable_name", "my-variable-name"},
		{"HTTPServer", "http-server"},
	}

	for _, tt := range tests {
		if got := ToKebabCase(tt.input); got != tt.expected {
			t.Errorf("ToKebabCase(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"my_variable_name", "myVariableName"},
		{"my-variable-name", "myVariableName"},
		{"my variable name", "myVariableName"},
		{"myVar", "myVar"},
		{"MyVar", "myVar"},
		{"xml_http_request", "xmlHttpRequest"},
	}

	for _, tt := range tests {
		if got := ToCamelCase(tt.input); got != tt.expected {
			t.Errorf("ToCamelCase(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"my_variable_name", "MyVariableName"},
		{"myVar", "MyVar"},
		{"http_server", "HttpServer"},
	}

	for _, tt := range tests {
		if got := ToPascalCase(tt.input); got != tt.expected {
			t.Errorf("ToPascalCase(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello world", "Hello World"},
		{"HELLO  WORLD", "Hello  World"},
		{"snake_case stays", "Snake_case Stays"},
	}

	for _, tt := range tests {
		if got := ToTitleCase(tt.input); got != tt.expected {
			t.Errorf("ToTitleCase(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}
