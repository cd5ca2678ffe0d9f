package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"declcheck/internal/driver"
	"declcheck/internal/lexer"
	"declcheck/internal/project"
)

// settings merges declcheck.toml with command-line flags; flags win.
type settings struct {
	analysis   lexer.Options
	stages     driver.StageSet
	noGate     bool
	format     string
	extensions []string
	cache      bool
	quiet      bool
	timings    bool
	manifest   *project.Manifest
}

// loadSettings finds declcheck.toml above target (a file or directory) and
// applies the flags of cmd that were set explicitly.
func loadSettings(cmd *cobra.Command, target string) (settings, error) {
	cfg := project.DefaultConfig()
	var s settings

	start := target
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		start = filepath.Dir(target)
	} else if err != nil {
		start = "."
	}
	manifest, ok, err := project.LoadManifest(start)
	if err != nil {
		return s, err
	}
	if ok {
		cfg = manifest.Config
		s.manifest = manifest
	}

	root := cmd.Root().PersistentFlags()
	if root.Changed("policy") {
		cfg.Analysis.Policy, _ = root.GetString("policy")
	}
	if root.Changed("max-diagnostics") {
		cfg.Analysis.MaxDiagnostics, _ = root.GetInt("max-diagnostics")
	}
	if root.Changed("keep-comments") {
		keep, _ := root.GetBool("keep-comments")
		cfg.Analysis.StripComments = !keep
	}
	if !root.Changed("color") && ok {
		switch cfg.Output.Color {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		}
	}
	flags := cmd.Flags()
	if f := flags.Lookup("stages"); f != nil && f.Changed {
		cfg.Analysis.Stages = f.Value.String()
	}
	if f := flags.Lookup("format"); f != nil && (f.Changed || !ok) {
		cfg.Output.Format = f.Value.String()
	}
	if f := flags.Lookup("disk-cache"); f != nil && f.Changed {
		cfg.Cache.Enabled = f.Value.String() == "true"
	}
	if f := flags.Lookup("ext"); f != nil && f.Changed {
		cfg.Files.Extensions, _ = flags.GetStringSlice("ext")
	}

	policy, err := lexer.ParsePolicy(cfg.Analysis.Policy)
	if err != nil {
		return s, err
	}
	if cfg.Analysis.MaxDiagnostics < 0 {
		return s, fmt.Errorf("--max-diagnostics must be >= 0")
	}
	stages, err := driver.ParseStages(cfg.Analysis.Stages)
	if err != nil {
		return s, err
	}
	s.analysis = lexer.Options{
		Policy:         policy,
		KeepComments:   !cfg.Analysis.StripComments,
		MaxDiagnostics: cfg.Analysis.MaxDiagnostics,
	}
	s.stages = stages
	s.format = cfg.Output.Format
	s.extensions = cfg.Files.Extensions
	s.cache = cfg.Cache.Enabled
	s.quiet, _ = root.GetBool("quiet")
	s.timings, _ = root.GetBool("timings")
	if f := flags.Lookup("no-gate"); f != nil {
		s.noGate = f.Value.String() == "true"
	}
	return s, nil
}

func (s settings) driverOptions() (driver.Options, error) {
	opts := driver.Options{
		Analysis:   s.analysis,
		Stages:     s.stages,
		NoGate:     s.noGate,
		Extensions: s.extensions,
	}
	if s.cache {
		cache, err := driver.OpenDiskCache("declcheck")
		if err != nil {
			return opts, fmt.Errorf("failed to open disk cache: %w", err)
		}
		opts.Cache = cache
	}
	return opts, nil
}
