package lexer

import (
	"strings"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"declcheck/internal/token"
	"declcheck/internal/types"
)

// rawLexer режет строку на сырые токены: строковый литерал целиком
// либо максимальная последовательность непробельных символов.
var rawLexer = plexer.MustSimple([]plexer.SimpleRule{
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Char", Pattern: `'(?:\\.|[^'\\])*'`},
	{Name: "Word", Pattern: `\S+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var whitespaceType = rawLexer.Symbols()["Whitespace"]

// State is the tokenizer state between two raw tokens.
type State uint8

const (
	// StateStart: beginning of a line or right after a delimiter.
	StateStart State = iota
	// StateAfterType: the previous lexeme was a DataType; a valid identifier
	// is classified as Identifier unconditionally.
	StateAfterType
	// StateDefault: anything else.
	StateDefault
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateAfterType:
		return "AfterType"
	default:
		return "Default"
	}
}

// Next returns the state after a lexeme of category c. A trailing delimiter
// is applied separately with the Delimiter category.
func (s State) Next(c token.Category) State {
	switch c {
	case token.DataType:
		return StateAfterType
	case token.Delimiter:
		return StateStart
	default:
		return StateDefault
	}
}

// RawTokens splits a line into raw tokens.
func RawTokens(line string) []string {
	lx, err := rawLexer.LexString("", line)
	if err != nil {
		return strings.Fields(line)
	}
	toks, err := plexer.ConsumeAll(lx)
	if err != nil {
		// правила покрывают любой ввод, но на всякий случай
		return strings.Fields(line)
	}
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		if t.EOF() || t.Type == whitespaceType {
			continue
		}
		out = append(out, t.Value)
	}
	return out
}

// Tokenize classifies one declaration line into lexemes.
func Tokenize(line string) []token.Lexeme {
	raw := RawTokens(line)
	out := make([]token.Lexeme, 0, len(raw)+1)
	state := StateStart
	for _, tok := range raw {
		body := strings.TrimRight(tok, ";")
		delimited := len(body) != len(tok)
		if body != "" {
			cat := Classify(body, state)
			out = append(out, token.Lexeme{Category: cat, Text: body})
			state = state.Next(cat)
		}
		if delimited {
			out = append(out, token.Lexeme{Category: token.Delimiter, Text: ";"})
			state = state.Next(token.Delimiter)
		}
	}
	return out
}

// Classify assigns a category to a raw token body in the given state.
func Classify(text string, state State) token.Category {
	if state == StateAfterType && token.IsIdentifier(text) {
		return token.Identifier
	}
	switch {
	case types.IsPrimitive(text):
		return token.DataType
	case text == "=":
		return token.AssignmentOperator
	case token.IsNumberLiteral(text):
		return token.Value
	case token.IsQuoted(text):
		return token.Value
	case token.IsBoolLiteral(text):
		return token.Value
	case token.IsIdentifier(text):
		return token.Identifier
	}
	return token.Unknown
}
