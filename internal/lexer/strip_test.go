package lexer

import (
	"strings"
	"testing"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"line comment", "int a; // note\nint b;", "int a; \nint b;"},
		{"line comment at eof", "int a; // note", "int a; "},
		{"block keeps newlines", "int a; /* one\ntwo\nthree */ int b;", "int a; \n\n int b;"},
		{"inside string", `String s = "http://x"; // c`, `String s = "http://x"; `},
		{"inside char", `char c = '/'; /* c */`, `char c = '/'; `},
		{"escaped quote", `String s = "a\"//b"; //x`, `String s = "a\"//b"; `},
		{"unterminated block", "int a;\n/* open\nint b;\nint c;", "int a;\n\n\n"},
		{"unterminated literal ends at newline", "String s = \"abc\nint a; // x", "String s = \"abc\nint a; "},
		{"no comments", "int a = 5;", "int a = 5;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripComments(tt.in); got != tt.want {
				t.Fatalf("StripComments(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripCommentsPreservesLineCount(t *testing.T) {
	in := "/* a\nb */ int x;\n// c\nint y; /* d\ne\nf */\n"
	out := StripComments(in)
	if strings.Count(in, "\n") != strings.Count(out, "\n") {
		t.Fatalf("newline count changed: %q -> %q", in, out)
	}
}
