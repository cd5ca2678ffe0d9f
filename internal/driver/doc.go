// Package driver runs the analysis stages over files and directories:
// gating, stage selection, parallel directory checks, timings, tracing and
// the on-disk result cache.
package driver
