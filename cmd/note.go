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

var noteLimit int

// noteCmd represents the note command
var noteCmd = &cobra.Command{
	Use:     "note",
	Short:   "Write and manage journal notes",
	Aliases: []string{"n"},
}

var addNoteCmd = &cobra.Command{
	Use:     "add [text]",
	Short:   "Save a note (opens the editor when no text is given)",
	Aliases: []string{"a"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "note add", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		body, err := textArg(args, *s.config)
		if err != nil {
			return err
		}
		note, err := s.journal.AddNote(cmd.Context(), body)
		if err != nil {
			return fmt.Errorf("failed to save note: %w", err)
		}

		fmt.Printf("✅ Note %s saved (%s)\n", note.ID, note.Timestamp)
		return nil
	},
}

var listNoteCmd = &cobra.Command{
	Use:     "list",
	Short:   "List notes, newest first",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "note list", readOnly)
		if err != nil {
			return err
		}
		defer s.Close()

		notes, err := s.journal.Notes(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load notes: %w", err)
		}
		if len(notes) == 0 {
			fmt.Println("No notes yet. Write your first one with `dayspark note add`.")
			return nil
		}

		t := newTable("ID", "Note", "Written")
		for _, n := range limitRows(notes, noteLimit) {
			t.AppendRow(table.Row{n.ID, n.Text, n.Timestamp})
		}
		t.Render()
		return nil
	},
}

var deleteNoteCmd = &cobra.Command{
	Use:     "delete [id]",
	Short:   "Delete a note",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm(fmt.Sprintf("Delete note %s?", args[0])) {
			fmt.Println("Canceled.")
			return nil
		}
		s, err := openSession(cmd.Context(), "note delete", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		removed, err := s.journal.DeleteNote(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}
		if !removed {
			log.Printf("⚠️ Note %s not found", args[0])
			return nil
		}
		fmt.Printf("✅ Note %s deleted\n", args[0])
		return nil
	},
}

var clearNoteCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Clear all notes?") {
			fmt.Println("Canceled.")
			return nil
		}
		s, err := openSession(cmd.Context(), "note clear", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.journal.ClearNotes(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear notes: %w", err)
		}
		fmt.Println("✅ All notes cleared")
		return nil
	},
}

func init() {
	noteCmd.AddCommand(addNoteCmd)
	noteCmd.AddCommand(listNoteCmd)
	noteCmd.AddCommand(deleteNoteCmd)
	noteCmd.AddCommand(clearNoteCmd)
	rootCmd.AddCommand(noteCmd)
	listNoteCmd.Flags().IntVar(&noteLimit, "limit", 0, "Show at most this many notes (0 for all)")
}
