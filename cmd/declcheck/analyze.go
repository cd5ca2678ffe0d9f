package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"declcheck/internal/driver"
	"declcheck/internal/observ"
	"declcheck/internal/pipeline"
)

var (
	lexCmd    = newStageCmd("lex", pipeline.StageLexical, "Run the lexical analyzer")
	syntaxCmd = newStageCmd("syntax", pipeline.StageSyntax, "Run the syntax validator")
	semaCmd   = newStageCmd("sema", pipeline.StageSemantic, "Run the semantic analyzer")
)

// newStageCmd builds a command that runs one analyzer on its own, without
// the gate in front of it.
func newStageCmd(name string, stage pipeline.Stage, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [flags] <file|->",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStage(cmd, args[0], stage)
		},
	}
	addOutputFlags(cmd)
	return cmd
}

func runStage(cmd *cobra.Command, target string, stage pipeline.Stage) error {
	s, err := loadSettings(cmd, target)
	if err != nil {
		return err
	}
	ro, err := readRenderOptions(cmd, s)
	if err != nil {
		return err
	}
	ro.stage = stage

	opts, err := s.driverOptions()
	if err != nil {
		return err
	}
	opts.Stages, _ = driver.ParseStages(string(stage))
	opts.NoGate = true
	if s.timings {
		opts.Timer = observ.NewTimer()
	}

	res, err := checkTarget(cmd, target, opts)
	if err != nil {
		return err
	}
	if err := renderResults(cmd.OutOrStdout(), []*driver.Result{res}, ro); err != nil {
		return err
	}
	if s.timings {
		printTimings(cmd.ErrOrStderr(), []*driver.Result{res}, opts.Timer)
	}
	if !res.Passed() {
		return errChecksFailed
	}
	return nil
}

// checkTarget checks a file, or standard input when target is "-".
func checkTarget(cmd *cobra.Command, target string, opts driver.Options) (*driver.Result, error) {
	if target != "-" {
		return driver.Check(cmd.Context(), target, opts)
	}
	in := cmd.InOrStdin()
	if in == nil {
		in = os.Stdin
	}
	src, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return driver.CheckSource(cmd.Context(), "<stdin>", string(src), opts)
}
