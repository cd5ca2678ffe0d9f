package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"declcheck/internal/trace"
	"declcheck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "declcheck",
	Short: "Lexical, syntax and semantic checks for variable declarations",
	Long: `declcheck validates snippets made only of typed variable declarations
("int a = 5;") in three gated stages: lexical, syntax and semantic.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupRun,
	PersistentPostRunE: finishRun,
}

// errChecksFailed сигнализирует, что проверка нашла ошибки: код выхода 1 без сообщения
var errChecksFailed = errors.New("checks failed")

// cleanups are run in reverse order after the command.
var cleanups []func()

// main registers subcommands and persistent flags and executes the root
// command. Failed checks exit with status 1; other errors are printed first.
func main() {
	rootCmd.Version = version.Current().Version

	rootCmd.AddCommand(lexCmd, syntaxCmd, semaCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	registerPersistentFlags(rootCmd)

	defer dumpRingOnPanic()

	if err := rootCmd.Execute(); err != nil {
		runCleanups()
		if !errors.Is(err, errChecksFailed) {
			fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		}
		os.Exit(1)
	}
}

// registerPersistentFlags adds the global flags to root.
func registerPersistentFlags(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per stage (0 = unlimited)")
	pf.String("policy", "strict", "non-declaration line policy (strict|legacy)")
	pf.Bool("keep-comments", false, "analyze comments instead of stripping them")

	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "events kept by the ring tracer")
	pf.Duration("trace-heartbeat", 0, "heartbeat interval (0 disables)")

	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")
}

func setupRun(cmd *cobra.Command, _ []string) error {
	if err := setupColor(cmd); err != nil {
		return err
	}
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	cleanups = append(cleanups, stopProfiling)
	stopTracing, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	cleanups = append(cleanups, stopTracing)
	return nil
}

func finishRun(_ *cobra.Command, _ []string) error {
	runCleanups()
	return nil
}

func runCleanups() {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	cleanups = nil
}

// dumpRingOnPanic печатает кольцевой буфер трассировки перед повторной паникой
func dumpRingOnPanic() {
	r := recover()
	if r == nil {
		return
	}
	if ring, ok := trace.Ring(trace.FromContext(rootCmd.Context())); ok {
		fmt.Fprintf(os.Stderr, "panic: %v\n--- last trace events (%s) ---\n", r, time.Now().Format(time.RFC3339))
		_ = ring.Dump(os.Stderr, trace.FormatText)
	}
	panic(r)
}

func setupColor(cmd *cobra.Command) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	return nil
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
