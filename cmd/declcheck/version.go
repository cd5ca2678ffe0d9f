package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"declcheck/internal/version"
)

const versionTagline = "every declaration, three times over"

type versionPayload struct {
	Tool    string `json:"tool"`
	Tagline string `json:"tagline"`
	version.Info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show declcheck build fingerprints",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	versionCmd.Flags().Bool("full", false, "include commit hash and build date")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	full, err := cmd.Flags().GetBool("full")
	if err != nil {
		return fmt.Errorf("failed to get full flag: %w", err)
	}
	info := version.Current()
	if !full {
		info.GitCommit = ""
		info.BuildDate = ""
	} else {
		info.GitCommit = valueOrUnknown(info.GitCommit)
		info.BuildDate = valueOrUnknown(info.BuildDate)
	}

	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(versionPayload{Tool: "declcheck", Tagline: versionTagline, Info: info})
	case "pretty":
		renderVersionPretty(cmd.OutOrStdout(), info, full)
		return nil
	}
	return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
}

func renderVersionPretty(out io.Writer, info version.Info, full bool) {
	fmt.Fprintf(out, "declcheck %s: %s\n", version.Colored(info.Version), versionTagline)
	if full {
		fmt.Fprintf(out, "commit: %s\n", info.GitCommit)
		fmt.Fprintf(out, "built:  %s\n", info.BuildDate)
	}
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
