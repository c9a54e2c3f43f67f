/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nakachan-ing/dayspark/internal/streak"
)

// streakCmd represents the streak command
var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the number of consecutive active days",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "streak", readOnly)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.journal.Streak(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load streak: %w", err)
		}

		countStyle := color.New(color.FgHiYellow, color.Bold).SprintFunc()
		current := streak.Current(rec, time.Now())
		fmt.Printf("🔥 %s day streak\n", countStyle(current))
		if rec.LastDate != nil {
			if last, err := time.Parse(time.RFC3339, *rec.LastDate); err == nil {
				fmt.Printf("Last active: %s\n", last.Local().Format("Mon, Jan 2 2006"))
			}
		}
		if current == 0 && rec.Count > 0 {
			fmt.Printf("Your %d day streak ended. Write something today to start again.\n", rec.Count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}
