package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"declcheck/internal/lexer"
)

// LexemeJSON is one categorized token.
type LexemeJSON struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// TokenLineJSON is the tokenizer output for one line.
type TokenLineJSON struct {
	Line       uint32       `json:"line"`
	Annotation string       `json:"annotation"`
	Lexemes    []LexemeJSON `json:"lexemes"`
}

// TokensJSON is the document written by FormatTokensJSON.
type TokensJSON struct {
	Total int             `json:"total"`
	Lines []TokenLineJSON `json:"lines"`
}

func tokenLines(lines []lexer.LineTokens) []TokenLineJSON {
	if len(lines) == 0 {
		return nil
	}
	out := make([]TokenLineJSON, len(lines))
	for i, lt := range lines {
		out[i] = TokenLineJSON{
			Line:       lt.Line,
			Annotation: lt.Annotation(),
			Lexemes:    make([]LexemeJSON, len(lt.Lexemes)),
		}
		for j, lx := range lt.Lexemes {
			out[i].Lexemes[j] = LexemeJSON{Category: lx.Category.String(), Text: lx.Text}
		}
	}
	return out
}

// FormatTokensPretty выводит токены по строкам в человекочитаемом формате
func FormatTokensPretty(w io.Writer, lines []lexer.LineTokens) error {
	total := 0
	for _, lt := range lines {
		if _, err := fmt.Fprintf(w, "line %d:\n", lt.Line); err != nil {
			return err
		}
		for i, lx := range lt.Lexemes {
			if _, err := fmt.Fprintf(w, "%3d: %-20s %q\n", i+1, lx.Category.String(), lx.Text); err != nil {
				return err
			}
		}
		total += len(lt.Lexemes)
	}
	_, err := fmt.Fprintf(w, "total: %d tokens\n", total)
	return err
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, lines []lexer.LineTokens) error {
	doc := TokensJSON{Lines: tokenLines(lines)}
	if doc.Lines == nil {
		doc.Lines = []TokenLineJSON{}
	}
	for _, lt := range lines {
		doc.Total += len(lt.Lexemes)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
