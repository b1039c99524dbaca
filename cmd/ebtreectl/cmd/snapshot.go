package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Force a durable snapshot of the index to disk",
	Long: `Save every entry currently in the index to the on-disk
snapshot store immediately, rather than waiting for process exit.

Example:
  ebtreectl snapshot`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.snapshot(); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		fmt.Println("snapshot saved")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}
