// Package ui renders directory check progress as a Bubble Tea program.
package ui
