package lexer

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-test/deep"

	"declcheck/internal/token"
)

func lx(c token.Category, text string) token.Lexeme {
	return token.Lexeme{Category: c, Text: text}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		line string
		want []token.Lexeme
	}{
		{
			line: "int a = 5;",
			want: []token.Lexeme{
				lx(token.DataType, "int"), lx(token.Identifier, "a"),
				lx(token.AssignmentOperator, "="), lx(token.Value, "5"), lx(token.Delimiter, ";"),
			},
		},
		{
			line: `String s = "hello world";`,
			want: []token.Lexeme{
				lx(token.DataType, "String"), lx(token.Identifier, "s"),
				lx(token.AssignmentOperator, "="), lx(token.Value, `"hello world"`), lx(token.Delimiter, ";"),
			},
		},
		{
			line: `String s = "a\"b c";`,
			want: []token.Lexeme{
				lx(token.DataType, "String"), lx(token.Identifier, "s"),
				lx(token.AssignmentOperator, "="), lx(token.Value, `"a\"b c"`), lx(token.Delimiter, ";"),
			},
		},
		{
			line: "double d = -2.5e3;;;",
			want: []token.Lexeme{
				lx(token.DataType, "double"), lx(token.Identifier, "d"),
				lx(token.AssignmentOperator, "="), lx(token.Value, "-2.5e3"), lx(token.Delimiter, ";"),
			},
		},
		{
			line: "char c = 'x' ;",
			want: []token.Lexeme{
				lx(token.DataType, "char"), lx(token.Identifier, "c"),
				lx(token.AssignmentOperator, "="), lx(token.Value, "'x'"), lx(token.Delimiter, ";"),
			},
		},
		{
			line: "int a = b + 1 ;",
			want: []token.Lexeme{
				lx(token.DataType, "int"), lx(token.Identifier, "a"),
				lx(token.AssignmentOperator, "="), lx(token.Identifier, "b"),
				lx(token.Unknown, "+"), lx(token.Value, "1"), lx(token.Delimiter, ";"),
			},
		},
		{
			line: "boolean f = true;",
			want: []token.Lexeme{
				lx(token.DataType, "boolean"), lx(token.Identifier, "f"),
				lx(token.AssignmentOperator, "="), lx(token.Value, "true"), lx(token.Delimiter, ";"),
			},
		},
	}
	for _, tt := range tests {
		if diff := deep.Equal(Tokenize(tt.line), tt.want); diff != nil {
			t.Errorf("Tokenize(%q): %v", tt.line, diff)
		}
	}
}

func TestTokenizeKeepsInvalidUTF8Bytes(t *testing.T) {
	line := "int\ta = \xff;"
	want := []token.Lexeme{
		lx(token.DataType, "int"), lx(token.Identifier, "a"),
		lx(token.AssignmentOperator, "="), lx(token.Unknown, "\xff"), lx(token.Delimiter, ";"),
	}
	got := Tokenize(line)
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatal(diff)
	}
	// текст лексемы остаётся срезом исходной строки, без замены на U+FFFD
	if !strings.Contains(line, got[3].Text) || utf8.ValidString(got[3].Text) {
		t.Fatalf("lexeme text %q is not a slice of the line", got[3].Text)
	}
}

func TestTokenizeStateTransitions(t *testing.T) {
	// после DataType идентификатор допускается даже если это имя типа
	got := Tokenize("int int;")
	want := []token.Lexeme{lx(token.DataType, "int"), lx(token.Identifier, "int"), lx(token.Delimiter, ";")}
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatalf("AfterType: %v", diff)
	}

	// в Default то же слово снова DataType
	got = Tokenize("x int")
	if got[1].Category != token.DataType {
		t.Fatalf("Default: expected DataType, got %v", got[1].Category)
	}

	// разделитель возвращает в Start; следующий DataType снова открывает AfterType
	got = Tokenize("int a; long long;")
	if got[4].Category != token.Identifier || got[4].Text != "long" {
		t.Fatalf("Start after delimiter: got %v", got[4])
	}

	// в AfterType не-идентификатор классифицируется обычным путём
	if c := Classify("42", StateAfterType); c != token.Value {
		t.Fatalf("AfterType literal: got %v", c)
	}
}

func TestStateNext(t *testing.T) {
	tests := []struct {
		from State
		cat  token.Category
		to   State
	}{
		{StateStart, token.DataType, StateAfterType},
		{StateStart, token.Identifier, StateDefault},
		{StateAfterType, token.Identifier, StateDefault},
		{StateAfterType, token.DataType, StateAfterType},
		{StateAfterType, token.Delimiter, StateStart},
		{StateDefault, token.Value, StateDefault},
		{StateDefault, token.Unknown, StateDefault},
		{StateDefault, token.Delimiter, StateStart},
	}
	for _, tt := range tests {
		if got := tt.from.Next(tt.cat); got != tt.to {
			t.Errorf("%v --%v--> %v, want %v", tt.from, tt.cat, got, tt.to)
		}
	}
}

func TestTokenizeDelimiterOnlyToken(t *testing.T) {
	got := Tokenize("int a ;;")
	if len(got) != 3 || got[2].Category != token.Delimiter {
		t.Fatalf("unexpected lexemes %v", got)
	}
	if len(Tokenize("   ")) != 0 {
		t.Fatal("blank line has no lexemes")
	}
}

func TestRawTokensKeepsQuotedSpaces(t *testing.T) {
	got := RawTokens(`String s = "a  b";`)
	want := []string{"String", "s", "=", `"a  b"`, ";"}
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatal(diff)
	}
}
