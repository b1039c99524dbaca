/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/ebtree/pkg/config"
)

// initCmd writes a default config file to configPath. An existing file
// is only overwritten when --force is given.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default ebtreectl config file",
	Long: `Write a default configuration file for ebtreectl.

Example:
  ebtreectl init --config=./ebtreectl.yaml --key-variant=u64`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if config.ConfigExists(configPath) {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", configPath)
			}
		}

		variant, _ := cmd.Flags().GetString("key-variant")
		if !config.ValidKeyVariant(variant) {
			return fmt.Errorf("invalid --key-variant %q", variant)
		}

		cfg := config.DefaultConfig()
		cfg.KeyVariant = variant

		dataDir, _ := cmd.Flags().GetString("data-dir")
		if dataDir != "" {
			cfg.DataDir = dataDir
		}

		if err := config.SaveConfig(cfg, configPath); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		fmt.Printf("Wrote config to %s (key_variant=%s, data_dir=%s)\n", configPath, cfg.KeyVariant, cfg.DataDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("key-variant", "u64", "Key variant: u32, i32, u64, i64, u128, i128, mb, str")
	initCmd.Flags().String("data-dir", "./data", "Data directory for the index snapshot")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
