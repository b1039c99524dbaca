/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/ebtree/pkg/config"
)

var (
	configPath string
	current    *demo
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ebtreectl",
	Short: "ebtreectl - elastic binary tree index demo",
	Long: `ebtreectl drives a pkg/ebindex ordered index, backed by the
elastic binary tree in pkg/ebtree, from the command line.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "init" {
			return nil
		}

		var cfg *config.Config
		if config.ConfigExists(configPath) {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded
		} else {
			cfg = config.DefaultConfig()
		}

		if !config.ValidKeyVariant(cfg.KeyVariant) {
			return fmt.Errorf("invalid key_variant %q in config", cfg.KeyVariant)
		}

		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}

		d, err := openDemo(cfg)
		if err != nil {
			return err
		}
		current = d
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if current == nil {
			return nil
		}
		if current.store != nil {
			if err := current.store.Save(current.fixed); err != nil {
				return fmt.Errorf("save snapshot: %w", err)
			}
		}
		return current.close()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.GetDefaultConfigPath(), "Path to the ebtreectl config file")
}
