package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"declcheck/internal/driver"
	"declcheck/internal/observ"
	"declcheck/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file|dir|->",
	Short: "Run the lexical, syntax and semantic stages",
	Long: `Check runs the selected stages in order. A failing stage closes the gate:
later stages are reported as skipped unless --no-gate is given.
A directory is walked for files with the configured extensions and checked
in parallel.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	addOutputFlags(checkCmd)
	checkCmd.Flags().String("stages", "all", "stages to run (comma separated: lexical,syntax,semantic or all)")
	checkCmd.Flags().Bool("no-gate", false, "run later stages even after a failure")
	checkCmd.Flags().Int("jobs", 0, "max parallel files (0=auto)")
	checkCmd.Flags().String("ui", "auto", "progress UI mode for directories (auto|on|off)")
	checkCmd.Flags().Bool("disk-cache", false, "reuse results cached on disk")
	checkCmd.Flags().StringSlice("ext", nil, "file extensions to walk in directories")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]
	s, err := loadSettings(cmd, target)
	if err != nil {
		return err
	}
	ro, err := readRenderOptions(cmd, s)
	if err != nil {
		return err
	}
	opts, err := s.driverOptions()
	if err != nil {
		return err
	}
	if opts.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if s.timings {
		opts.Timer = observ.NewTimer()
	}

	info, statErr := os.Stat(target)
	if target == "-" || statErr != nil || !info.IsDir() {
		res, err := checkTarget(cmd, target, opts)
		if err != nil {
			return err
		}
		return finishCheck(cmd, []*driver.Result{res}, ro, s, opts.Timer, false)
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	withUI, err := useProgressUI(uiValue, ro.format, s.quiet)
	if err != nil {
		return err
	}

	ro.baseDir = target
	var results []*driver.Result
	if withUI {
		files, err := driver.ListFiles(target, opts)
		if err != nil {
			return err
		}
		_, results, err = runCheckDirWithUI(cmd.Context(), "declcheck "+target, files, target, opts)
		if err != nil {
			return err
		}
	} else {
		var fileSet *source.FileSet
		fileSet, results, err = driver.CheckDir(cmd.Context(), target, opts)
		if err != nil {
			return err
		}
		ro.baseDir = fileSet.BaseDir()
	}
	return finishCheck(cmd, results, ro, s, opts.Timer, true)
}

// useProgressUI resolves --ui (auto|on|off) for a directory run.
func useProgressUI(value, format string, quiet bool) (bool, error) {
	var on bool
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		on = isTerminal(os.Stdout) && isTerminal(os.Stderr)
	case "on":
		on = true
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
	// прогресс мешает машинному выводу
	if quiet || format == "json" || format == "dump" {
		return false, nil
	}
	return on, nil
}

func finishCheck(cmd *cobra.Command, results []*driver.Result, ro renderOptions, s settings, timer *observ.Timer, dir bool) error {
	if err := renderResults(cmd.OutOrStdout(), results, ro); err != nil {
		return err
	}
	summary := driver.Summarize(results)
	if dir && !s.quiet && ro.format != "json" && ro.format != "dump" {
		printSummary(cmd.ErrOrStderr(), summary)
	}
	if s.timings {
		printTimings(cmd.ErrOrStderr(), results, timer)
	}
	if !summary.OK() {
		return errChecksFailed
	}
	return nil
}

func printSummary(out io.Writer, sum driver.Summary) {
	fmt.Fprintf(out, "checked %d files: %d passed, %d failed, %d errors", sum.Files, sum.Passed, sum.Failed, sum.Errors)
	if sum.Cached > 0 {
		fmt.Fprintf(out, " (%d cached)", sum.Cached)
	}
	fmt.Fprintln(out)
}
