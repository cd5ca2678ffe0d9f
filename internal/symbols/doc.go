// Package symbols implements the symbol table the semantic stage fills while
// it walks declarations top to bottom.
package symbols
