// Package prof wires the CPU, heap and runtime-trace profilers behind the
// CLI profiling flags.
package prof
