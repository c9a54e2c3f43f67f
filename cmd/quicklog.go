/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var quickLogLimit int

// quickLogCmd represents the log command
var quickLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record short quick-log entries",
}

var addQuickLogCmd = &cobra.Command{
	Use:     "add [text]",
	Short:   "Record a quick log entry (opens the editor when no text is given)",
	Aliases: []string{"a"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "log add", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		body, err := textArg(args, *s.config)
		if err != nil {
			return err
		}
		entry, err := s.journal.AddQuickLog(cmd.Context(), body)
		if err != nil {
			return fmt.Errorf("failed to save quick log: %w", err)
		}
		fmt.Printf("⚡ Logged %q\n", entry.Text)
		return nil
	},
}

var listQuickLogCmd = &cobra.Command{
	Use:     "list",
	Short:   "List quick log entries, newest first",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "log list", readOnly)
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.journal.QuickLogs(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load quick logs: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No quick logs yet.")
			return nil
		}

		t := newTable("ID", "Entry", "Date")
		for _, e := range limitRows(entries, quickLogLimit) {
			t.AppendRow(table.Row{e.ID, e.Text, formatDate(e.Date)})
		}
		t.Render()
		return nil
	},
}

var deleteQuickLogCmd = &cobra.Command{
	Use:     "delete [id]",
	Short:   "Delete a quick log entry",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm(fmt.Sprintf("Delete quick log %s?", args[0])) {
			fmt.Println("Canceled.")
			return nil
		}
		s, err := openSession(cmd.Context(), "log delete", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		removed, err := s.journal.DeleteQuickLog(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to delete quick log: %w", err)
		}
		if !removed {
			log.Printf("⚠️ Quick log %s not found", args[0])
			return nil
		}
		fmt.Printf("✅ Quick log %s deleted\n", args[0])
		return nil
	},
}

func init() {
	quickLogCmd.AddCommand(addQuickLogCmd)
	quickLogCmd.AddCommand(listQuickLogCmd)
	quickLogCmd.AddCommand(deleteQuickLogCmd)
	rootCmd.AddCommand(quickLogCmd)
	listQuickLogCmd.Flags().IntVar(&quickLogLimit, "limit", 0, "Show at most this many entries (0 for all)")
}
