// Package pipeline names the analysis stages and carries progress events
// from the driver to whoever renders them (the TUI or nothing).
package pipeline
