/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nakachan-ing/dayspark/internal/model"
)

var moodLimit int

// moodCmd represents the mood command
var moodCmd = &cobra.Command{
	Use:     "mood",
	Short:   "Track how you feel",
	Aliases: []string{"m"},
}

var addMoodCmd = &cobra.Command{
	Use:   "add [1-5]",
	Short: "Record a mood (1 very bad .. 5 great)",
	Long: `Record a mood on a 1 to 5 scale:

  1 😢 Very Bad   2 ☹️ Bad   3 😐 Neutral   4 🙂 Good   5 😁 Great

Values outside the scale are recorded as neutral.`,
	Args:    cobra.MaximumNArgs(1),
	Aliases: []string{"a"},
	RunE: func(cmd *cobra.Command, args []string) error {
		value := model.MoodDefault
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("mood must be a number between %d and %d", model.MoodMin, model.MoodMax)
			}
			value = v
		}

		s, err := openSession(cmd.Context(), "mood add", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		mood, err := s.journal.AddMood(cmd.Context(), value)
		if err != nil {
			return fmt.Errorf("failed to save mood: %w", err)
		}
		fmt.Printf("%s Mood saved: %s\n", mood.Emoji, mood.Word)
		return nil
	},
}

var listMoodCmd = &cobra.Command{
	Use:     "list",
	Short:   "Show mood history, newest first",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "mood list", readOnly)
		if err != nil {
			return err
		}
		defer s.Close()

		moods, err := s.journal.Moods(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load moods: %w", err)
		}
		if len(moods) == 0 {
			fmt.Println("No mood entries yet.")
			return nil
		}

		t := newTable("ID", "Mood", "", "Recorded")
		for _, m := range limitRows(moods, moodLimit) {
			t.AppendRow(table.Row{m.ID, m.Emoji, m.Word, m.Timestamp})
		}
		t.Render()
		return nil
	},
}

var deleteMoodCmd = &cobra.Command{
	Use:     "delete [id]",
	Short:   "Delete a mood entry",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm(fmt.Sprintf("Delete mood %s?", args[0])) {
			fmt.Println("Canceled.")
			return nil
		}
		s, err := openSession(cmd.Context(), "mood delete", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		removed, err := s.journal.DeleteMood(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to delete mood: %w", err)
		}
		if !removed {
			log.Printf("⚠️ Mood %s not found", args[0])
			return nil
		}
		fmt.Printf("✅ Mood %s deleted\n", args[0])
		return nil
	},
}

var clearMoodCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the whole mood history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Clear mood history?") {
			fmt.Println("Canceled.")
			return nil
		}
		s, err := openSession(cmd.Context(), "mood clear", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.journal.ClearMoods(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear moods: %w", err)
		}
		fmt.Println("✅ Mood history cleared")
		return nil
	},
}

func init() {
	moodCmd.AddCommand(addMoodCmd)
	moodCmd.AddCommand(listMoodCmd)
	moodCmd.AddCommand(deleteMoodCmd)
	moodCmd.AddCommand(clearMoodCmd)
	rootCmd.AddCommand(moodCmd)
	listMoodCmd.Flags().IntVar(&moodLimit, "limit", 0, "Show at most this many entries (0 for all)")
}
