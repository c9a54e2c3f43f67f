/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// clearAllCmd represents the clear-all command
var clearAllCmd = &cobra.Command{
	Use:   "clear-all",
	Short: "Delete every note, task, photo, mood, the streak and settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("⚠️ This deletes ALL journal data and cannot be undone. Continue?") {
			fmt.Println("Canceled.")
			return nil
		}
		s, err := openSession(cmd.Context(), "clear-all", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.journal.ClearAll(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear data: %w", err)
		}
		fmt.Println("✅ All data cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearAllCmd)
}
