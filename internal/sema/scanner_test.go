package sema

import (
	"testing"

	"github.com/go-test/deep"
)

func TestSplitTopLevel(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a, b", []string{"a", " b"}},
		{`s = "x,y", t`, []string{`s = "x,y"`, " t"}},
		{`c = ',', d`, []string{`c = ','`, " d"}},
		{"m = f(1, 2), n", []string{"m = f(1, 2)", " n"}},
		{`s = "a\",b"`, []string{`s = "a\",b"`}},
		{"a,", []string{"a", ""}},
	}
	for _, tt := range tests {
		if diff := deep.Equal(splitTopLevel(tt.in, ','), tt.want); diff != nil {
			t.Errorf("splitTopLevel(%q): %v", tt.in, diff)
		}
	}
}

func TestIndexTopLevel(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"a = 1", 2},
		{`s = "=" `, 2},
		{`"=" x`, -1},
		{"(a = b)", -1},
		{"(a) = b", 4},
	}
	for _, tt := range tests {
		if got := indexTopLevel(tt.in, '='); got != tt.want {
			t.Errorf("indexTopLevel(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStripParens(t *testing.T) {
	tests := map[string]string{
		"((a + b))":   "a + b",
		"(a) + (b)":   "(a) + (b)",
		" ( 5 ) ":     "5",
		`(")")`:       `")"`,
		"(a":          "(a",
		"()":          "",
		"((1) + (2))": "(1) + (2)",
	}
	for in, want := range tests {
		if got := stripParens(in); got != want {
			t.Errorf("stripParens(%q) = %q, want %q", in, got, want)
		}
	}
}
