/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nakachan-ing/dayspark/internal/model"
	"github.com/nakachan-ing/dayspark/internal/store"
)

var initForce bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := store.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}

		if _, err := os.Stat(configPath); err == nil && !initForce {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}

		config := model.DefaultConfig()
		if err := store.SaveConfigFile(configPath, config); err != nil {
			return err
		}

		// `~/.config/dayspark/data` を作成
		loaded, err := store.LoadConfigFile(configPath)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(loaded.DataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}

		fmt.Println("✅ DaySpark initialized successfully!")
		fmt.Println("📄 Config file created at:", configPath)
		fmt.Println("📁 Data directory:", filepath.Clean(loaded.DataDir))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}
