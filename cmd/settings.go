/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nakachan-ing/dayspark/internal/model"
)

var settingsFlags = struct {
	primary, accent, bg, card, font, fontSize string
}{}

func swatch(color string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("    ")
}

func settingsFields(settings *model.Settings) []editorField {
	return []editorField{
		stringField("Primary color", &settings.PrimaryColor),
		stringField("Accent color", &settings.AccentColor),
		stringField("Background color", &settings.BgColor),
		stringField("Card color", &settings.CardColor),
		stringField("Font family", &settings.FontFamily),
		stringField("Font size", &settings.FontSize),
	}
}

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Theme settings used by the web UI",
}

var showSettingsCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current theme settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "settings show", readOnly)
		if err != nil {
			return err
		}
		defer s.Close()

		settings, err := s.journal.Settings(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		t := newTable("Setting", "Value", "")
		t.AppendRows([]table.Row{
			{"Primary color", settings.PrimaryColor, swatch(settings.PrimaryColor)},
			{"Accent color", settings.AccentColor, swatch(settings.AccentColor)},
			{"Background color", settings.BgColor, swatch(settings.BgColor)},
			{"Card color", settings.CardColor, swatch(settings.CardColor)},
			{"Font family", settings.FontFamily, ""},
			{"Font size", settings.FontSize, ""},
		})
		t.Render()
		return nil
	},
}

var setSettingsCmd = &cobra.Command{
	Use:   "set",
	Short: "Change theme settings with flags",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "settings set", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		settings, err := s.journal.Settings(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		changes := map[string]*string{
			"primary":   &settings.PrimaryColor,
			"accent":    &settings.AccentColor,
			"bg":        &settings.BgColor,
			"card":      &settings.CardColor,
			"font":      &settings.FontFamily,
			"font-size": &settings.FontSize,
		}
		values := map[string]string{
			"primary":   settingsFlags.primary,
			"accent":    settingsFlags.accent,
			"bg":        settingsFlags.bg,
			"card":      settingsFlags.card,
			"font":      settingsFlags.font,
			"font-size": settingsFlags.fontSize,
		}
		changed := 0
		for name, field := range changes {
			if cmd.Flags().Changed(name) {
				*field = values[name]
				changed++
			}
		}
		if changed == 0 {
			return fmt.Errorf("nothing to change; see `dayspark settings set --help`")
		}

		if err := s.journal.SaveSettings(cmd.Context(), settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("✅ Settings saved")
		return nil
	},
}

var resetSettingsCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Reset theme settings to defaults?") {
			fmt.Println("Canceled.")
			return nil
		}
		s, err := openSession(cmd.Context(), "settings reset", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.journal.ResetSettings(cmd.Context()); err != nil {
			return fmt.Errorf("failed to reset settings: %w", err)
		}
		fmt.Println("✅ Settings reset to defaults")
		return nil
	},
}

var editSettingsCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit theme settings interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "settings edit", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		settings, err := s.journal.Settings(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		editor := newFieldEditor("🎨 Theme settings", settingsFields(&settings), func() error {
			return s.journal.SaveSettings(cmd.Context(), settings)
		})
		saved, err := runFieldEditor(editor)
		if err != nil {
			return err
		}
		if saved {
			fmt.Println("✅ Settings saved")
		}
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(showSettingsCmd)
	settingsCmd.AddCommand(setSettingsCmd)
	settingsCmd.AddCommand(resetSettingsCmd)
	settingsCmd.AddCommand(editSettingsCmd)
	rootCmd.AddCommand(settingsCmd)
	setSettingsCmd.Flags().StringVar(&settingsFlags.primary, "primary", "", "Primary color (#rrggbb)")
	setSettingsCmd.Flags().StringVar(&settingsFlags.accent, "accent", "", "Accent color (#rrggbb)")
	setSettingsCmd.Flags().StringVar(&settingsFlags.bg, "bg", "", "Background color (#rrggbb)")
	setSettingsCmd.Flags().StringVar(&settingsFlags.card, "card", "", "Card color (#rrggbb)")
	setSettingsCmd.Flags().StringVar(&settingsFlags.font, "font", "", "Font family")
	setSettingsCmd.Flags().StringVar(&settingsFlags.fontSize, "font-size", "", "Base font size, e.g. 16px")
}
