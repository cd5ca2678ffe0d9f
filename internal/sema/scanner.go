package sema

import "strings"

// scanner walks a string and tracks whether the current byte is at top
// level: outside "..." and '...' literals and outside parentheses.
type scanner struct {
	inString bool
	inChar   bool
	escape   bool
	depth    int
}

// step consumes c and reports whether it is a top-level byte.
// Quotes, parentheses and escape sequences are never top-level.
func (s *scanner) step(c byte) bool {
	switch {
	case s.escape:
		s.escape = false
		return false
	case c == '\\' && (s.inString || s.inChar):
		s.escape = true
		return false
	case c == '"' && !s.inChar:
		s.inString = !s.inString
		return false
	case c == '\'' && !s.inString:
		s.inChar = !s.inChar
		return false
	case s.inString || s.inChar:
		return false
	case c == '(':
		s.depth++
		return false
	case c == ')':
		if s.depth > 0 {
			s.depth--
		}
		return false
	}
	return s.depth == 0
}

// splitTopLevel splits s on every top-level sep. Empty parts are kept.
func splitTopLevel(s string, sep byte) []string {
	var (
		sc    scanner
		parts []string
		start int
	)
	for i := 0; i < len(s); i++ {
		if sc.step(s[i]) && s[i] == sep {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// indexTopLevel returns the index of the first top-level b, or -1.
func indexTopLevel(s string, b byte) int {
	var sc scanner
	for i := 0; i < len(s); i++ {
		if sc.step(s[i]) && s[i] == b {
			return i
		}
	}
	return -1
}

// stripParens removes enclosing parentheses while the first '(' is closed by
// the last ')': "((a + b))" -> "a + b", but "(a) + (b)" stays as is.
func stripParens(s string) string {
	s = strings.TrimSpace(s)
	for len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' && closesAtEnd(s) {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// closesAtEnd: the '(' at s[0] is matched by the ')' at the end of s.
func closesAtEnd(s string) bool {
	var sc scanner
	for i := 0; i < len(s); i++ {
		sc.step(s[i])
		if sc.depth == 0 && !sc.inString && !sc.inChar {
			return i == len(s)-1
		}
	}
	return false
}
