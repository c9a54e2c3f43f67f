/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Import data saved under the old notes/schedule/moods keys",
	Long: `Import entries written by earlier versions under the bare "notes",
"schedule" and "moods" keys into the current keys, then remove the old keys.

This also happens automatically the first time a command changes data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "migrate", mutatingNoMigrate)
		if err != nil {
			return err
		}
		defer s.Close()

		report, err := s.journal.Store().MigrateLegacy(cmd.Context())
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		if report.Total() == 0 {
			fmt.Println("✅ Nothing to migrate.")
			return nil
		}
		fmt.Printf("✅ Migrated %d note(s), %d schedule item(s), %d mood(s)\n", report.Notes, report.Schedule, report.Moods)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
