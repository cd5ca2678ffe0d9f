package token

import "testing"

func TestLiteralPredicates(t *testing.T) {
	tests := []struct {
		in                                     string
		ident, integer, float, str, char, bool bool
	}{
		{in: "abc_1", ident: true},
		{in: "_x", ident: true},
		{in: "1abc"},
		{in: "42", integer: true},
		{in: "-7", integer: true},
		{in: "+3.14", float: true},
		{in: "1e5", float: true},
		{in: "2.5E-3", float: true},
		{in: "3."},
		{in: `"hi there"`, str: true},
		{in: `'x'`, char: true},
		{in: `'xy'`},
		{in: `'\n'`, char: true},
		{in: `'é'`, char: true},
		{in: "true", ident: true, bool: true},
	}
	for _, tt := range tests {
		if got := IsIdentifier(tt.in); got != tt.ident {
			t.Errorf("IsIdentifier(%q) = %v", tt.in, got)
		}
		if got := IsIntegerLiteral(tt.in); got != tt.integer {
			t.Errorf("IsIntegerLiteral(%q) = %v", tt.in, got)
		}
		if got := IsFloatLiteral(tt.in); got != tt.float {
			t.Errorf("IsFloatLiteral(%q) = %v", tt.in, got)
		}
		if got := IsStringLiteral(tt.in); got != tt.str {
			t.Errorf("IsStringLiteral(%q) = %v", tt.in, got)
		}
		if got := IsCharLiteral(tt.in); got != tt.char {
			t.Errorf("IsCharLiteral(%q) = %v", tt.in, got)
		}
		if got := IsBoolLiteral(tt.in); got != tt.bool {
			t.Errorf("IsBoolLiteral(%q) = %v", tt.in, got)
		}
	}
}

func TestIsQuoted(t *testing.T) {
	for _, s := range []string{`"abc"`, `'a'`, `''`, `"a b"`, `"a\"b c"`, `'\''`} {
		if !IsQuoted(s) {
			t.Errorf("IsQuoted(%q) = false", s)
		}
	}
	for _, s := range []string{`"abc`, `'a"`, `"a"b"`, `"a\"`} {
		if IsQuoted(s) {
			t.Errorf("IsQuoted(%q) = true", s)
		}
	}
}
