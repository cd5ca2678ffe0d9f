package ast

import "testing"

func TestDeclarationString(t *testing.T) {
	d := Declaration{Type: "int", Name: "a", Init: "5", HasInit: true, Line: 1}
	if d.String() != "int a = 5;" {
		t.Fatalf("unexpected %q", d.String())
	}
	bare := Declaration{Type: "List<int>", Name: "xs"}
	if bare.String() != "List<int> xs;" {
		t.Fatalf("unexpected %q", bare.String())
	}
}
