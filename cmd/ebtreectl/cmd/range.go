package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rangeCmd represents the range command
var rangeCmd = &cobra.Command{
	Use:   "range [lo] [hi]",
	Short: "List keys in ascending order within an optional bound",
	Long: `List keys and their record IDs in ascending order. Pass "-"
(or omit the argument) for an open-ended bound.

Example:
  ebtreectl range - -
  ebtreectl range 10 20`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lo, hi := "", ""
		if len(args) > 0 && args[0] != "-" {
			lo = args[0]
		}
		if len(args) > 1 && args[1] != "-" {
			hi = args[1]
		}

		count := 0
		err := current.walkRange(lo, hi, func(e rangeEntry) bool {
			fmt.Printf("key=%q id=%s\n", string(e.Key), e.Value.String())
			count++
			return true
		})
		if err != nil {
			return fmt.Errorf("range: %w", err)
		}
		fmt.Printf("%d entries\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rangeCmd)
}
