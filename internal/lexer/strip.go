package lexer

import "strings"

// StripComments removes // and /* */ comments that sit outside string and
// char literals. Newlines are always kept, including the ones inside block
// comments, so line numbers of the result match the input. An unterminated
// block comment swallows the rest of the input except its newlines.
// Literals never span lines: a newline closes an unterminated literal.
func StripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	var quote byte // 0: вне литерала
	for i := 0; i < len(src); i++ {
		ch := src[i]

		if quote != 0 {
			b.WriteByte(ch)
			switch {
			case ch == '\\' && i+1 < len(src) && src[i+1] != '\n':
				// экранированный символ копируем как есть
				i++
				b.WriteByte(src[i])
			case ch == quote || ch == '\n':
				quote = 0
			}
			continue
		}

		switch {
		case ch == '"' || ch == '\'':
			quote = ch
			b.WriteByte(ch)
		case ch == '/' && i+1 < len(src) && src[i+1] == '/':
			// до конца строки; сам '\n' скопирует следующая итерация
			for i+1 < len(src) && src[i+1] != '\n' {
				i++
			}
		case ch == '/' && i+1 < len(src) && src[i+1] == '*':
			i += 2
			for i < len(src) {
				if src[i] == '*' && i+1 < len(src) && src[i+1] == '/' {
					i++
					break
				}
				if src[i] == '\n' {
					b.WriteByte('\n')
				}
				i++
			}
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}
