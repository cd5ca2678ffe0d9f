package sema

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"declcheck/internal/diag"
	"declcheck/internal/symbols"
	"declcheck/internal/token"
	"declcheck/internal/types"
)

// exprKind is the inferred category of an initializer expression.
// Higher values win when fragments are combined.
type exprKind uint8

const (
	exprUnknown exprKind = iota
	exprBoolean
	exprIntegral
	exprFloating
	exprString
)

func (k exprKind) String() string {
	switch k {
	case exprBoolean:
		return "boolean"
	case exprIntegral:
		return "integral type"
	case exprFloating:
		return "floating type"
	case exprString:
		return "String"
	}
	return "unknown"
}

func kindOf(p types.Primitive) exprKind {
	switch {
	case p == types.String:
		return exprString
	case p == types.Boolean:
		return exprBoolean
	case p.IsFloating():
		return exprFloating
	case p.IsIntegral():
		return exprIntegral
	}
	return exprUnknown
}

// typeError is a failed initializer check.
type typeError struct {
	code diag.Code
	msg  string
	// ref: строка объявления переменной из выражения, если она есть
	ref uint32
}

// checkInitializer verifies that init can be assigned to a variable name of
// type declared. It returns nil when the initializer is acceptable.
func checkInitializer(declared types.Primitive, init, name string, tbl *symbols.Table) *typeError {
	expr := stripParens(init)
	typ := declared.String()

	mismatch := func(format string, args ...any) *typeError {
		return &typeError{code: diag.SemaTypeMismatch, msg: "Type mismatch - " + fmt.Sprintf(format, args...)}
	}

	// одиночный литерал
	switch {
	case token.IsStringLiteral(expr):
		if declared != types.String {
			return mismatch("cannot assign String literal to %s '%s'", typ, name)
		}
		return nil
	case token.IsCharLiteral(expr):
		if declared != types.Char {
			return mismatch("cannot assign char literal to %s '%s'", typ, name)
		}
		return nil
	case token.IsBoolLiteral(expr):
		if declared != types.Boolean {
			return mismatch("cannot assign boolean literal to %s '%s'", typ, name)
		}
		return nil
	case token.IsIntegerLiteral(expr):
		if !declared.IsNumeric() {
			return mismatch("cannot assign integer literal to %s '%s'", typ, name)
		}
		return nil
	case token.IsFloatLiteral(expr):
		switch {
		case declared.IsFloating():
			return nil
		case declared.IsIntegral():
			return mismatch("cannot assign floating literal to integral type %s '%s'", typ, name)
		default:
			return mismatch("cannot assign floating literal to %s '%s'", typ, name)
		}
	}

	// выражение: объединяем категории фрагментов
	kind := exprUnknown
	var ref uint32
	for _, frag := range fragments(expr) {
		var k exprKind
		switch {
		case token.IsStringLiteral(frag):
			k = exprString
		case token.IsCharLiteral(frag), token.IsIntegerLiteral(frag):
			k = exprIntegral
		case token.IsBoolLiteral(frag):
			k = exprBoolean
		case token.IsFloatLiteral(frag):
			k = exprFloating
		case token.IsIdentifier(frag):
			e, ok := tbl.Lookup(frag)
			if !ok {
				return &typeError{
					code: diag.SemaUndefinedRef,
					msg:  fmt.Sprintf("Undefined variable '%s' used in assignment to '%s'", frag, name),
				}
			}
			k = kindOf(e.Type)
			if k > kind {
				ref = e.Line
			}
		default:
			// операторы и прочее не влияют на тип
			continue
		}
		if k > kind {
			kind = k
		}
	}

	var te *typeError
	switch kind {
	case exprString:
		if declared != types.String {
			te = mismatch("expression evaluates to String but variable '%s' is %s", name, typ)
		}
	case exprBoolean:
		if declared != types.Boolean {
			te = mismatch("expression evaluates to boolean but variable '%s' is %s", name, typ)
		}
	case exprFloating:
		if !declared.IsFloating() {
			te = mismatch("expression evaluates to floating type but variable '%s' is %s", name, typ)
		}
	case exprIntegral:
		if !declared.IsNumeric() {
			te = mismatch("expression evaluates to integral type but variable '%s' is %s", name, typ)
		}
	default:
		if declared == types.String || declared == types.Boolean || declared == types.Char {
			te = &typeError{
				code: diag.SemaUnverifiable,
				msg:  fmt.Sprintf("Unable to verify initializer type for '%s' declared as %s", name, typ),
			}
		}
	}
	if te != nil {
		te.ref = ref
	}
	return te
}

// fragments splits an expression into literal and identifier fragments.
// Operators, parentheses and other punctuation separate fragments and are
// dropped. A sign belongs to a fragment only when it starts a number
// ("-1") or follows the exponent marker of one ("1e-5").
func fragments(expr string) []string {
	var (
		out   []string
		start = -1 // начало текущего фрагмента
		quote rune
	)
	flush := func(end int) {
		if start >= 0 && end > start {
			out = append(out, expr[start:end])
		}
		start = -1
	}

	for i := 0; i < len(expr); {
		r, size := utf8.DecodeRuneInString(expr[i:])

		if quote != 0 {
			switch r {
			case '\\':
				// пропускаем экранированный символ
				if i+size < len(expr) {
					_, next := utf8.DecodeRuneInString(expr[i+size:])
					size += next
				}
			case quote:
				quote = 0
				flush(i + size)
			}
			i += size
			continue
		}

		switch {
		case r == '"' || r == '\'':
			flush(i)
			quote = r
			start = i
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.':
			if start < 0 {
				start = i
			}
		case (r == '+' || r == '-') && signAttaches(expr, start, i):
			if start < 0 {
				start = i
			}
		default:
			flush(i)
		}
		i += size
	}
	// незакрытый литерал или хвост фрагмента
	flush(len(expr))
	return out
}

// signAttaches reports whether the sign at expr[i] is part of a number.
func signAttaches(expr string, start, i int) bool {
	if start < 0 {
		return i+1 < len(expr) && expr[i+1] >= '0' && expr[i+1] <= '9'
	}
	cur := expr[start:i]
	last := cur[len(cur)-1]
	if last != 'e' && last != 'E' {
		return false
	}
	first := cur[0]
	if first == '+' || first == '-' {
		if len(cur) < 2 {
			return false
		}
		first = cur[1]
	}
	return first >= '0' && first <= '9'
}
