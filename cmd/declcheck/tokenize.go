package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"declcheck/internal/diagfmt"
	"declcheck/internal/lexer"
	"declcheck/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file|->",
	Short: "Print the categorized tokens of every line",
	Long: `Tokenize strips comments (unless --keep-comments is set) and classifies
the tokens of every non-blank line, declaration or not.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
	s, err := loadSettings(cmd, args[0])
	if err != nil {
		return err
	}

	src, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}
	lines := tokenizeLines(src, s.analysis)

	if format == "json" {
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), lines)
	}
	return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), lines)
}

func tokenizeLines(src string, opts lexer.Options) []lexer.LineTokens {
	in := lexer.Prepare(src, opts)
	var out []lexer.LineTokens
	for _, line := range in.Lines {
		if line.Blank() {
			continue
		}
		out = append(out, lexer.LineTokens{Line: line.Num, Lexemes: lexer.Tokenize(line.Text)})
	}
	return out
}

// readSource loads a file (or stdin for "-") with the same normalization
// the checks apply.
func readSource(cmd *cobra.Command, target string) (string, error) {
	fileSet := source.NewFileSet()
	if target == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return fileSet.Get(fileSet.AddVirtual("<stdin>", raw)).Text(), nil
	}
	id, err := fileSet.Load(target)
	if err != nil {
		return "", fmt.Errorf("failed to load file: %w", err)
	}
	return fileSet.Get(id).Text(), nil
}
