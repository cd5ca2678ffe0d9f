package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"declcheck/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a declcheck.toml with the default settings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing declcheck.toml")
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 && args[0] != "" {
		target = args[0]
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}
	if st, err := os.Stat(target); err == nil && !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	path, err := project.WriteManifest(target, project.DefaultConfig(), force)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", filepath.ToSlash(path))
	return nil
}
