/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nakachan-ing/dayspark/internal/model"
	"github.com/nakachan-ing/dayspark/internal/util"
)

var scheduleTime string
var schedulePriority string
var editScheduleTitle string
var editScheduleTime string
var editSchedulePriority string

// scheduleCmd represents the schedule command
var scheduleCmd = &cobra.Command{
	Use:     "schedule",
	Short:   "Plan the day by time",
	Aliases: []string{"s"},
}

var addScheduleCmd = &cobra.Command{
	Use:     "add [title]",
	Short:   "Add an event at --time HH:MM",
	Args:    cobra.MinimumNArgs(1),
	Aliases: []string{"a"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "schedule add", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		item, err := s.journal.AddScheduleItem(cmd.Context(), strings.Join(args, " "), scheduleTime, schedulePriority)
		if err != nil {
			return fmt.Errorf("failed to add event: %w", err)
		}
		fmt.Printf("✅ %s at %s added (%s)\n", item.Title, util.FormatTime12h(item.Time), item.ID)
		return nil
	},
}

var listScheduleCmd = &cobra.Command{
	Use:     "list",
	Short:   "Show the schedule ordered by time",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "schedule list", readOnly)
		if err != nil {
			return err
		}
		defer s.Close()

		items, err := s.journal.Schedule(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("Nothing scheduled.")
			return nil
		}

		t := newTable("ID", "", "Time", "Event", "Priority")
		for _, it := range items {
			t.AppendRow(table.Row{it.ID, doneMark(it.Done), util.FormatTime12h(it.Time), it.Title, priorityColored(it.Priority)})
		}
		t.Render()
		return nil
	},
}

var toggleScheduleCmd = &cobra.Command{
	Use:     "toggle [id]",
	Short:   "Mark an event done, or not done",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"done"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "schedule toggle", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		item, err := s.journal.ToggleScheduleItem(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("✅ %s: done=%v\n", item.Title, item.Done)
		return nil
	},
}

var editScheduleCmd = &cobra.Command{
	Use:     "edit [id]",
	Short:   "Change the title, time or priority of an event",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"e"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "schedule edit", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		items, err := s.journal.Schedule(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}
		var current *model.ScheduleItem
		for i := range items {
			if items[i].ID == args[0] {
				current = &items[i]
				break
			}
		}
		if current == nil {
			return fmt.Errorf("schedule item %s not found", args[0])
		}

		title, at, priority := current.Title, current.Time, current.Priority
		if cmd.Flags().Changed("title") {
			title = editScheduleTitle
		}
		if cmd.Flags().Changed("time") {
			at = editScheduleTime
		}
		if cmd.Flags().Changed("priority") {
			priority = editSchedulePriority
		}

		item, err := s.journal.UpdateScheduleItem(cmd.Context(), current.ID, title, at, priority)
		if err != nil {
			return fmt.Errorf("failed to update event: %w", err)
		}
		fmt.Printf("✅ %s at %s updated\n", item.Title, util.FormatTime12h(item.Time))
		return nil
	},
}

var deleteScheduleCmd = &cobra.Command{
	Use:     "delete [id]",
	Short:   "Delete an event",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm(fmt.Sprintf("Delete event %s?", args[0])) {
			fmt.Println("Canceled.")
			return nil
		}
		s, err := openSession(cmd.Context(), "schedule delete", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		removed, err := s.journal.DeleteScheduleItem(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}
		if !removed {
			log.Printf("⚠️ Event %s not found", args[0])
			return nil
		}
		fmt.Printf("✅ Event %s deleted\n", args[0])
		return nil
	},
}

func init() {
	scheduleCmd.AddCommand(addScheduleCmd)
	scheduleCmd.AddCommand(listScheduleCmd)
	scheduleCmd.AddCommand(toggleScheduleCmd)
	scheduleCmd.AddCommand(editScheduleCmd)
	scheduleCmd.AddCommand(deleteScheduleCmd)
	rootCmd.AddCommand(scheduleCmd)
	addScheduleCmd.Flags().StringVar(&scheduleTime, "time", "", "Time of day, HH:MM (24h)")
	addScheduleCmd.Flags().StringVarP(&schedulePriority, "priority", "p", model.PriorityNormal, "Priority: low, normal or high")
	editScheduleCmd.Flags().StringVar(&editScheduleTitle, "title", "", "New title")
	editScheduleCmd.Flags().StringVar(&editScheduleTime, "time", "", "New time, HH:MM (24h)")
	editScheduleCmd.Flags().StringVarP(&editSchedulePriority, "priority", "p", "", "New priority: low, normal or high")
}
