package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"declcheck/internal/diagfmt"
	"declcheck/internal/driver"
	"declcheck/internal/pipeline"
)

type renderOptions struct {
	format   string
	pathMode diagfmt.PathMode
	baseDir  string
	extras   bool
	timings  bool
	// stage, когда задан, печатает отчёт только этой стадии
	stage pipeline.Stage
}

var outputFormats = []string{"report", "pretty", "short", "json", "dump"}

// addOutputFlags registers the flags shared by every analyzing command.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "report", "output format (report|pretty|short|json|dump)")
	cmd.Flags().String("path-mode", "auto", "how paths are shown (auto|absolute|relative|basename)")
	cmd.Flags().Bool("details", false, "append token annotations and the symbol table to passing stages")
}

func readRenderOptions(cmd *cobra.Command, s settings) (renderOptions, error) {
	ro := renderOptions{format: s.format, timings: s.timings}
	valid := false
	for _, f := range outputFormats {
		if f == ro.format {
			valid = true
		}
	}
	if !valid {
		return ro, fmt.Errorf("unsupported format %q (expected report|pretty|short|json|dump)", ro.format)
	}
	modeStr, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return ro, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	if ro.pathMode, err = diagfmt.ParsePathMode(modeStr); err != nil {
		return ro, err
	}
	if ro.extras, err = cmd.Flags().GetBool("details"); err != nil {
		return ro, fmt.Errorf("failed to get details flag: %w", err)
	}
	return ro, nil
}

// renderResults writes results in the selected format. Report output for
// more than one file is preceded by a "== path ==" header per file.
func renderResults(out io.Writer, results []*driver.Result, ro renderOptions) error {
	switch ro.format {
	case "json":
		return diagfmt.JSON(out, results, diagfmt.JSONOpts{
			PathMode:     ro.pathMode,
			BaseDir:      ro.baseDir,
			IncludeNotes: true,
			IncludeTimes: ro.timings,
		})
	case "dump":
		return diagfmt.Dump(out, results)
	}

	useColor := !color.NoColor
	for i, res := range results {
		if res == nil {
			continue
		}
		var err error
		switch ro.format {
		case "report":
			if len(results) > 1 {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "== %s ==\n", res.Path)
			}
			opts := diagfmt.ReportOpts{Color: useColor, Extras: ro.extras}
			if ro.stage != "" && res.File != nil {
				err = diagfmt.StageReport(out, res, ro.stage, opts)
			} else {
				err = diagfmt.Report(out, res, opts)
			}
		case "pretty":
			err = diagfmt.Pretty(out, res, diagfmt.PrettyOpts{
				Color:      useColor,
				PathMode:   ro.pathMode,
				BaseDir:    ro.baseDir,
				ShowNotes:  true,
				ShowSource: true,
			})
		case "short":
			err = diagfmt.Short(out, res, ro.pathMode, ro.baseDir, true)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
