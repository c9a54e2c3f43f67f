/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/nakachan-ing/dayspark/internal/memory"
	"github.com/nakachan-ing/dayspark/internal/model"
)

var memoriesPlain bool

func memoriesMarkdown(feed []model.Memory) string {
	var b strings.Builder
	b.WriteString("## Memories\n\n")
	if len(feed) == 0 {
		b.WriteString("_Nothing here yet. Write a note, log your mood or add a photo._\n")
		return b.String()
	}
	for _, m := range feed {
		text := m.Text
		if text == "" {
			text = "_(empty)_"
		}
		fmt.Fprintf(&b, "- %s %s  \n  *%s*\n", memory.Icon(m.Kind), text, m.Date.Local().Format("Jan 2 2006, 3:04 PM"))
	}
	return b.String()
}

// memoriesCmd represents the memories command
var memoriesCmd = &cobra.Command{
	Use:   "memories",
	Short: "Show the most recent journal moments",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "memories", readOnly)
		if err != nil {
			return err
		}
		defer s.Close()

		feed, err := s.journal.Memories(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to build memories: %w", err)
		}

		md := memoriesMarkdown(feed)
		if memoriesPlain {
			fmt.Print(md)
			return nil
		}
		rendered, err := glamour.Render(md, "dark")
		if err != nil {
			log.Printf("⚠️ Failed to render markdown content: %v", err)
			fmt.Print(md)
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(memoriesCmd)
	memoriesCmd.Flags().BoolVar(&memoriesPlain, "plain", false, "Print raw markdown")
}
