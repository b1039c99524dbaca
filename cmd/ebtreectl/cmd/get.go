package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Look up a key's record ID",
	Long: `Look up the record ID stored for a key.

Example:
  ebtreectl get mykey`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, ok, err := current.get(args[0])
		if err != nil {
			return fmt.Errorf("get: %w", err)
		}
		if !ok {
			fmt.Printf("key %q not found\n", args[0])
			return nil
		}
		fmt.Printf("key=%q id=%s\n", args[0], id.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
