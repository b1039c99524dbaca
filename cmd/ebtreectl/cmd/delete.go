package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a key from the index",
	Long: `Delete a key from the ebindex. In duplicate-key mode this
removes only the first matching entry (in tree order).

Example:
  ebtreectl delete mykey`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		removed, err := current.delete(args[0])
		if err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		if !removed {
			fmt.Printf("key %q not found\n", args[0])
			return nil
		}
		fmt.Printf("deleted key %q\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
