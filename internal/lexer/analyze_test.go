package lexer

import (
	"testing"

	"declcheck/internal/diag"
)

func TestAnalyzeEndToEndInput(t *testing.T) {
	res := Analyze("int a = 5;\ndouble b = 2.5;\nboolean c = true;", Options{})
	if !res.Passed {
		t.Fatalf("expected pass, got %v", res.Bag.Messages())
	}
	// type, identifier, '=', value, delimiter на каждой из трёх строк
	if res.TokenCount != 15 {
		t.Fatalf("expected 15 lexemes, got %d", res.TokenCount)
	}
	if len(res.Lines) != 3 || res.Lines[2].Line != 3 {
		t.Fatalf("unexpected annotations %+v", res.Lines)
	}
	want := "int (DATA_TYPE), a (IDENTIFIER), = (ASSIGNMENT_OPERATOR), 5 (VALUE), ; (DELIMITER)"
	if got := res.Lines[0].Annotation(); got != want {
		t.Fatalf("annotation %q, want %q", got, want)
	}
}

func TestAnalyzeNonDeclarationLine(t *testing.T) {
	res := Analyze("int a;\n   System.out.println(x);  ", Options{})
	if res.Passed {
		t.Fatal("expected failure")
	}
	items := res.Bag.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", res.Bag.Messages())
	}
	if items[0].String() != "Line 2: Only variable declarations are allowed. Found: System.out.println(x);" {
		t.Fatalf("unexpected %q", items[0].String())
	}
}

func TestAnalyzeNoDeclarations(t *testing.T) {
	res := Analyze("x = 1;\nfoo();", Options{})
	msgs := res.Bag.Messages()
	if res.Passed || len(msgs) != 3 {
		t.Fatalf("unexpected result %v", msgs)
	}
	if msgs[2] != "No variable declarations found" {
		t.Fatalf("last diagnostic must be top-level, got %q", msgs[2])
	}
}

func TestAnalyzeEmptySource(t *testing.T) {
	for _, src := range []string{"", "  \n\t\n"} {
		res := Analyze(src, Options{})
		if res.Passed || res.Bag.Len() != 1 {
			t.Fatalf("%q: unexpected result %v", src, res.Bag.Messages())
		}
		d := res.Bag.Items()[0]
		if d.Code != diag.IOEmptySource || !d.TopLevel() || d.Message != "No source code provided" {
			t.Fatalf("%q: unexpected diagnostic %+v", src, d)
		}
	}
}

func TestAnalyzeCommentAwareLineNumbers(t *testing.T) {
	src := "/* header\n   more */\nint a;\n// only comment\nfoo bar\n"
	res := Analyze(src, Options{})
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Line != 5 {
		t.Fatalf("expected a single diagnostic on line 5, got %v", res.Bag.Messages())
	}

	kept := Analyze(src, Options{KeepComments: true})
	if kept.Passed || kept.Bag.Len() != 4 {
		t.Fatalf("comments kept: expected 4 diagnostics, got %v", kept.Bag.Messages())
	}
}

func TestAnalyzeCandidateRules(t *testing.T) {
	tests := []struct {
		line string
		ok   bool
	}{
		{"int a;", true},
		{"int a = 1", true},
		{"int a", false},
		{"Integer a;", false},
		{"a int;", false},
		{"int;", false},
		{"String\ts;", true},
	}
	for _, tt := range tests {
		if got := IsDeclarationCandidate(tt.line); got != tt.ok {
			t.Errorf("IsDeclarationCandidate(%q) = %v", tt.line, got)
		}
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	src := "int a = 5;\nfoo;\nString s = \"x\";"
	first := Analyze(src, Options{})
	second := Analyze(src, Options{})
	if first.Passed != second.Passed || first.TokenCount != second.TokenCount {
		t.Fatal("results differ between runs")
	}
	a, b := first.Bag.Messages(), second.Bag.Messages()
	if len(a) != len(b) {
		t.Fatal("diagnostics differ between runs")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("diagnostic %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := ParsePolicy(" Legacy "); err != nil || p != PolicyLegacy {
		t.Fatalf("got %v, %v", p, err)
	}
	if p, err := ParsePolicy(""); err != nil || p != PolicyStrict {
		t.Fatalf("got %v, %v", p, err)
	}
	if _, err := ParsePolicy("lenient"); err == nil {
		t.Fatal("expected error")
	}
}
