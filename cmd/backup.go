/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nakachan-ing/dayspark/internal/backup"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot the journal into the backup directory",
}

var runBackupCmd = &cobra.Command{
	Use:   "run",
	Short: "Write today's snapshot and prune expired ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "backup run", readOnly)
		if err != nil {
			return err
		}
		defer s.Close()

		path, err := backup.NewRunner(s.journal, s.config.Backup, s.logger).Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
		fmt.Println("✅ Backup written:", path)
		return nil
	},
}

var pruneBackupCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete snapshots older than backup.retention days",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "backup prune", readOnly)
		if err != nil {
			return err
		}
		defer s.Close()

		removed, err := backup.NewRunner(s.journal, s.config.Backup, s.logger).Prune()
		if err != nil {
			return fmt.Errorf("prune failed: %w", err)
		}
		for _, f := range removed {
			fmt.Println("🗑️ ", f.Name)
		}
		fmt.Printf("✅ %d expired backup(s) removed\n", len(removed))
		return nil
	},
}

func init() {
	backupCmd.AddCommand(runBackupCmd)
	backupCmd.AddCommand(pruneBackupCmd)
	rootCmd.AddCommand(backupCmd)
}
