package ast

import "strings"

// Declaration is one validated "<type> <name> [= <init>];" statement.
type Declaration struct {
	Type    string
	Name    string
	Init    string // trimmed, without ';'
	HasInit bool
	Line    uint32
}

// String renders the declaration back in canonical form.
func (d Declaration) String() string {
	var b strings.Builder
	b.WriteString(d.Type)
	b.WriteByte(' ')
	b.WriteString(d.Name)
	if d.HasInit {
		b.WriteString(" = ")
		b.WriteString(d.Init)
	}
	b.WriteByte(';')
	return b.String()
}
