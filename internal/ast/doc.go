// Package ast holds the declarations accepted by the syntax stage.
package ast
