package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put <key>",
	Short: "Insert a key into the index, minting a new record ID",
	Long: `Insert a key into the ebindex, minting a fresh ksuid as its
record identifier.

Example:
  ebtreectl put mykey`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := current.put(args[0])
		if err != nil {
			return fmt.Errorf("put: %w", err)
		}
		fmt.Printf("inserted key=%q id=%s\n", args[0], id.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(putCmd)
}
