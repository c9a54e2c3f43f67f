/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nakachan-ing/dayspark/internal/model"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show journal statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "stats", readOnly)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.journal.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}

		avgMood := "-"
		if stats.TotalMoods > 0 {
			avgMood = fmt.Sprintf("%.1f %s", stats.AvgMood, model.MoodEmoji(int(stats.AvgMood+0.5)))
		}

		t := newTable("Stat", "Value")
		t.AppendRows([]table.Row{
			{"Tasks", stats.TotalTasks},
			{"Completed", fmt.Sprintf("%d (%d%%)", stats.CompletedTasks, stats.CompletionRate)},
			{"Notes", stats.TotalNotes},
			{"Photos", stats.TotalPhotos},
			{"Quick logs", stats.TotalLogs},
			{"Moods", stats.TotalMoods},
			{"Average mood", avgMood},
			{"Entries", stats.TotalEntries},
		})
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
