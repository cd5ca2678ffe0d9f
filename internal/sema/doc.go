// Package sema implements the semantic stage.
//
// Lines are matched against a relaxed declaration grammar (modifiers, a
// primitive type, optional [] suffixes, a comma-separated declarator list and
// a terminating ';'). Each declarator is checked in order: name grammar,
// duplicate declaration, initializer type. Failing declarators are reported
// and not registered, so later references to them are undefined.
//
// Initializer inference first tries a single literal, then combines the
// categories of all literal and identifier fragments of the expression with
// precedence String > floating > integral > boolean.
package sema
