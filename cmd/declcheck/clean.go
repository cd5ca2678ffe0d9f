package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"declcheck/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove cached check results",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	cache, err := driver.OpenDiskCache("declcheck")
	if err != nil {
		return fmt.Errorf("failed to open disk cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to remove %q: %w", cache.Dir(), err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", cache.Dir())
	return nil
}
