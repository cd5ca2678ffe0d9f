package parser

import (
	"testing"

	"github.com/go-test/deep"

	"declcheck/internal/ast"
	"declcheck/internal/diag"
	"declcheck/internal/lexer"
)

func TestParseLineMessages(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"int a", "Variable declaration must end with semicolon"},
		{"int a == 5;", "Invalid operator '==' used instead of '='"},
		{"int a = ;", "Assignment value cannot be empty"},
		{"int = 5;", "Missing type or variable name"},
		{"int;", "Missing type or variable name"},
		{"static int a = 5;", "Too many tokens in declaration part 'static int a'"},
		{"System.out.println(x);", "Missing type or variable name"},
		{"int 1a;", "Invalid variable name '1a'"},
		{"int a-b;", "Invalid variable name 'a-b'"},
		{"9x a;", "Invalid or missing type '9x'"},
		{"List<int a;", "Invalid or missing type 'List<int'"},
	}
	for _, tt := range tests {
		_, err := ParseLine(tt.line)
		if err == nil {
			t.Errorf("ParseLine(%q): expected error", tt.line)
			continue
		}
		if err.Error() != tt.want {
			t.Errorf("ParseLine(%q) = %q, want %q", tt.line, err.Error(), tt.want)
		}
	}
}

func TestParseLineAccepts(t *testing.T) {
	tests := []struct {
		line string
		want ast.Declaration
	}{
		{"int a;", ast.Declaration{Type: "int", Name: "a", Line: 1}},
		{"double  d =  2.5 ;", ast.Declaration{Type: "double", Name: "d", Init: "2.5", HasInit: true, Line: 1}},
		{"Foo bar;", ast.Declaration{Type: "Foo", Name: "bar", Line: 1}},
		{"List<String> xs;", ast.Declaration{Type: "List<String>", Name: "xs", Line: 1}},
		{"int<x> n;", ast.Declaration{Type: "int<x>", Name: "n", Line: 1}},
		{`String s = "a=b";`, ast.Declaration{Type: "String", Name: "s", Init: `"a=b"`, HasInit: true, Line: 1}},
	}
	for _, tt := range tests {
		got, err := ParseLine(tt.line)
		if err != nil {
			t.Errorf("ParseLine(%q): %v", tt.line, err)
			continue
		}
		if diff := deep.Equal(got, tt.want); diff != nil {
			t.Errorf("ParseLine(%q): %v", tt.line, diff)
		}
	}
}

func TestAnalyzeAccumulatesPerLine(t *testing.T) {
	src := "int a = 5;\nint b\n\nint c == 1;\nboolean ok = true;"
	res := Analyze(src, lexer.Options{})
	if res.Passed {
		t.Fatal("expected failure")
	}
	want := "error SYN2001 a.java:2 Variable declaration must end with semicolon\n" +
		"error SYN2002 a.java:4 Invalid operator '==' used instead of '='"
	if got := diag.FormatShortDiagnostics(res.Bag.Items(), "a.java", false); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
	if len(res.Decls) != 2 || res.Decls[1].Line != 5 {
		t.Fatalf("unexpected decls %+v", res.Decls)
	}
}

func TestAnalyzePlainDeclarationPasses(t *testing.T) {
	res := Analyze("long n;", lexer.Options{})
	if !res.Passed || len(res.Decls) != 1 || res.Decls[0].HasInit {
		t.Fatalf("unexpected result %+v %v", res.Decls, res.Bag.Messages())
	}
}

func TestAnalyzeNonDeclarationFails(t *testing.T) {
	res := Analyze("System.out.println(x);", lexer.Options{})
	if res.Passed {
		t.Fatal("expected failure")
	}
	msgs := res.Bag.Messages()
	if msgs[0] != "Line 1: Missing type or variable name" {
		t.Fatalf("unexpected %v", msgs)
	}
}

func TestAnalyzeCommentsOnlyAndEmpty(t *testing.T) {
	res := Analyze("// nothing here\n/* still nothing */", lexer.Options{})
	if res.Passed || res.Bag.Items()[0].Code != diag.SynNoDeclarations {
		t.Fatalf("unexpected %v", res.Bag.Messages())
	}
	empty := Analyze(" \n ", lexer.Options{})
	if empty.Passed || empty.Bag.Len() != 1 || empty.Bag.Items()[0].Code != diag.IOEmptySource {
		t.Fatalf("unexpected %v", empty.Bag.Messages())
	}
}

func TestAnalyzeCommentInsideStringIsKept(t *testing.T) {
	res := Analyze(`String url = "http://example.com"; // home`, lexer.Options{})
	if !res.Passed || res.Decls[0].Init != `"http://example.com"` {
		t.Fatalf("unexpected %+v %v", res.Decls, res.Bag.Messages())
	}
}

func TestIsValidType(t *testing.T) {
	for _, typ := range []string{"int", "String", "Map<K,V>", "short<>", "_T"} {
		if !IsValidType(typ) {
			t.Errorf("IsValidType(%q) = false", typ)
		}
	}
	for _, typ := range []string{"", "1int", "a.b", "List<a>b"} {
		if IsValidType(typ) {
			t.Errorf("IsValidType(%q) = true", typ)
		}
	}
}
