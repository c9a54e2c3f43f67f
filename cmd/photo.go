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

var photoCaption string
var photoToday bool

// photoCmd represents the photo command
var photoCmd = &cobra.Command{
	Use:     "photo",
	Short:   "Keep photos in the journal",
	Aliases: []string{"p"},
}

var addPhotoCmd = &cobra.Command{
	Use:     "add [image file]",
	Short:   "Add a photo from an image file",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"a"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "photo add", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		photo, err := s.journal.AddPhotoFromFile(cmd.Context(), args[0], photoCaption, photoToday)
		if err != nil {
			return fmt.Errorf("failed to add photo: %w", err)
		}
		fmt.Printf("📷 Photo %s added: %s\n", photo.ID, photo.Caption)
		return nil
	},
}

var listPhotoCmd = &cobra.Command{
	Use:     "list",
	Short:   "List photos, newest first",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "photo list", readOnly)
		if err != nil {
			return err
		}
		defer s.Close()

		photos, err := s.journal.Photos(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load photos: %w", err)
		}
		if len(photos) == 0 {
			fmt.Println("No photos yet.")
			return nil
		}

		t := newTable("ID", "Caption", "Added", "Size")
		for _, p := range photos {
			t.AppendRow(table.Row{p.ID, p.Caption, formatDate(p.Date), fmt.Sprintf("%d KB", len(p.Src)/1024)})
		}
		t.Render()
		return nil
	},
}

var deletePhotoCmd = &cobra.Command{
	Use:     "delete [id]",
	Short:   "Delete a photo",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm(fmt.Sprintf("Delete photo %s?", args[0])) {
			fmt.Println("Canceled.")
			return nil
		}
		s, err := openSession(cmd.Context(), "photo delete", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		removed, err := s.journal.DeletePhoto(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to delete photo: %w", err)
		}
		if !removed {
			log.Printf("⚠️ Photo %s not found", args[0])
			return nil
		}
		fmt.Printf("✅ Photo %s deleted\n", args[0])
		return nil
	},
}

func init() {
	photoCmd.AddCommand(addPhotoCmd)
	photoCmd.AddCommand(listPhotoCmd)
	photoCmd.AddCommand(deletePhotoCmd)
	rootCmd.AddCommand(photoCmd)
	addPhotoCmd.Flags().StringVarP(&photoCaption, "caption", "c", "", "Photo caption")
	addPhotoCmd.Flags().BoolVar(&photoToday, "today", true, "Count this photo as today's activity")
}
