package token

import "regexp"

var (
	identRe      = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	integerRe    = regexp.MustCompile(`^[+-]?\d+$`)
	decimalRe    = regexp.MustCompile(`^[+-]?\d+\.\d+([eE][+-]?\d+)?$`)
	scientificRe = regexp.MustCompile(`^[+-]?\d+(?:\.\d+)?[eE][+-]?\d+$`)
	stringRe     = regexp.MustCompile(`^".*"$`)
	charRe       = regexp.MustCompile(`^'(?:[^\\]|\\.)'$`)
	quotedRe     = regexp.MustCompile(`^(?:"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*')$`)
)

// IsIdentifier: letter or underscore, then letters, digits, underscores.
func IsIdentifier(s string) bool { return identRe.MatchString(s) }

// IsIntegerLiteral matches an optionally signed run of digits.
func IsIntegerLiteral(s string) bool { return integerRe.MatchString(s) }

// IsFloatLiteral matches decimal literals (with optional exponent) and
// scientific literals without a fraction such as 1e5.
func IsFloatLiteral(s string) bool {
	return decimalRe.MatchString(s) || scientificRe.MatchString(s)
}

// IsNumberLiteral is IsIntegerLiteral || IsFloatLiteral.
func IsNumberLiteral(s string) bool {
	return IsIntegerLiteral(s) || IsFloatLiteral(s)
}

// IsStringLiteral matches text enclosed in double quotes.
func IsStringLiteral(s string) bool { return stringRe.MatchString(s) }

// IsCharLiteral matches one character or one escape sequence in single quotes.
func IsCharLiteral(s string) bool { return charRe.MatchString(s) }

// IsQuoted matches a "…" or '…' span; a quote of the same kind inside it
// must be escaped with a backslash.
func IsQuoted(s string) bool { return quotedRe.MatchString(s) }

// IsBoolLiteral matches true or false.
func IsBoolLiteral(s string) bool { return s == "true" || s == "false" }
