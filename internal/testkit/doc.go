// Package testkit holds invariant checks shared by analyzer tests and the
// fuzz harnesses.
package testkit
