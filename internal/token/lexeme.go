package token

import (
	"fmt"
	"strings"
)

// Lexeme is a classified token of a declaration line.
type Lexeme struct {
	Category Category
	Text     string
}

// String renders "<text> (<CATEGORY>)".
func (l Lexeme) String() string {
	return fmt.Sprintf("%s (%s)", l.Text, l.Category)
}

// Annotate renders a lexeme sequence the way the lexical report shows it:
// "int (DATA_TYPE), a (IDENTIFIER), ; (DELIMITER)".
func Annotate(lexemes []Lexeme) string {
	parts := make([]string, len(lexemes))
	for i, l := range lexemes {
		parts[i] = l.String()
	}
	return strings.Join(parts, ", ")
}
