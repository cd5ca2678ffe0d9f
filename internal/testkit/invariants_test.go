package testkit

import (
	"testing"

	"declcheck/internal/diag"
	"declcheck/internal/lexer"
	"declcheck/internal/parser"
	"declcheck/internal/sema"
)

var samples = []string{
	"int a = 5;\ndouble b = 2.5;\nboolean c = true;",
	"// int a;\nint b;",
	"int a = 5\nint a == 6;\nprint(x);",
	"int a = 1;\nint a = 2;\nString s = a + 1;",
	"   \n\t",
	"",
	"/* unterminated\nint a;",
	"int x = \"a, b\", y = 'c';",
}

func TestAnalyzersHoldInvariants(t *testing.T) {
	for _, policy := range []lexer.Policy{lexer.PolicyStrict, lexer.PolicyLegacy} {
		opts := lexer.Options{Policy: policy}
		for _, src := range samples {
			if err := CheckLexical(src, lexer.Analyze(src, opts)); err != nil {
				t.Errorf("lexical %q: %v", src, err)
			}
			syn := parser.Analyze(src, opts)
			if err := CheckDiagnostics(src, syn.Passed, syn.Bag); err != nil {
				t.Errorf("syntax %q: %v", src, err)
			}
			if err := CheckSemantic(src, sema.Analyze(src, opts)); err != nil {
				t.Errorf("semantic %q: %v", src, err)
			}
		}
	}
}

func TestCheckDiagnosticsRejects(t *testing.T) {
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynNoDeclarations, 0, "No variable declarations found"))
	bag.Add(diag.NewError(diag.SynExpectSemicolon, 1, "Variable declaration must end with semicolon"))
	if err := CheckDiagnostics("int a", false, bag); err == nil {
		t.Fatal("top-level before line diagnostic must be rejected")
	}

	bag = diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynExpectSemicolon, 5, "Variable declaration must end with semicolon"))
	if err := CheckDiagnostics("int a", false, bag); err == nil {
		t.Fatal("line beyond input must be rejected")
	}
	if err := CheckDiagnostics("int a", true, bag); err == nil {
		t.Fatal("passed with diagnostics must be rejected")
	}
}
