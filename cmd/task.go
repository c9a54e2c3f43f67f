/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/nakachan-ing/dayspark/internal/model"
)

var taskPriority string
var taskSearchQuery string
var taskPageSize int

func renderTasks(tasks []model.Task) {
	t := newTable("Task ID", "", text.Bold.Sprintf("Task"), "Priority", "Added")
	for _, task := range tasks {
		title := task.Text
		if task.Done {
			title = text.CrossedOut.Sprintf("%s", task.Text)
		}
		t.AppendRow(table.Row{
			task.ID,
			doneMark(task.Done),
			title,
			priorityColored(task.Priority),
			formatDate(task.Date),
		})
	}
	t.Render()
}

// taskCmd represents the task command
var taskCmd = &cobra.Command{
	Use:     "task",
	Short:   "Manage the to-do list",
	Aliases: []string{"t"},
}

var addTaskCmd = &cobra.Command{
	Use:     "add [text]",
	Short:   "Add a new task",
	Args:    cobra.MinimumNArgs(1),
	Aliases: []string{"a"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "task add", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		task, err := s.journal.AddTask(cmd.Context(), strings.Join(args, " "), taskPriority)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}
		fmt.Printf("✅ Task %s added (%s)\n", task.ID, priorityColored(task.Priority))
		return nil
	},
}

var listTaskCmd = &cobra.Command{
	Use:     "list",
	Short:   "List tasks: open first, then by priority",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "task list", readOnly)
		if err != nil {
			return err
		}
		defer s.Close()

		tasks, err := s.journal.Tasks(cmd.Context(), taskSearchQuery)
		if err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}

		fmt.Println(strings.Repeat("=", 30))
		fmt.Printf("Tasks: %v tasks shown\n", len(tasks))
		fmt.Println(strings.Repeat("=", 30))
		if len(tasks) == 0 {
			return nil
		}

		// ページネーションの準備
		reader := bufio.NewReader(os.Stdin)
		page := 0
		pageSize := taskPageSize
		if pageSize <= 0 {
			pageSize = len(tasks)
		}

		for {
			start := page * pageSize
			end := start + pageSize
			if start >= len(tasks) {
				break
			}
			if end > len(tasks) {
				end = len(tasks)
			}

			renderTasks(tasks[start:end])

			if end >= len(tasks) {
				break
			}

			fmt.Print("\nPress Enter for the next page (q to quit): ")
			input, _ := reader.ReadString('\n')
			if strings.TrimSpace(input) == "q" {
				break
			}
			page++
		}
		return nil
	},
}

var toggleTaskCmd = &cobra.Command{
	Use:     "toggle [id]",
	Short:   "Mark a task done, or open again",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"done"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "task toggle", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		task, err := s.journal.ToggleTask(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if task.Done {
			fmt.Printf("✅ %q done\n", task.Text)
		} else {
			fmt.Printf("↩️  %q reopened\n", task.Text)
		}
		return nil
	},
}

var deleteTaskCmd = &cobra.Command{
	Use:     "delete [id]",
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm(fmt.Sprintf("Delete task %s?", args[0])) {
			fmt.Println("Canceled.")
			return nil
		}
		s, err := openSession(cmd.Context(), "task delete", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		removed, err := s.journal.DeleteTask(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		if !removed {
			log.Printf("❌ Task with ID %s not found", args[0])
			return nil
		}
		fmt.Printf("✅ Task %s deleted\n", args[0])
		return nil
	},
}

var clearCompletedTaskCmd = &cobra.Command{
	Use:   "clear-completed",
	Short: "Remove all done tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), "task clear-completed", mutating)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.journal.ClearCompletedTasks(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to clear completed tasks: %w", err)
		}
		fmt.Printf("✅ %d completed task(s) removed\n", n)
		return nil
	},
}

func init() {
	taskCmd.AddCommand(addTaskCmd)
	taskCmd.AddCommand(listTaskCmd)
	taskCmd.AddCommand(toggleTaskCmd)
	taskCmd.AddCommand(deleteTaskCmd)
	taskCmd.AddCommand(clearCompletedTaskCmd)
	rootCmd.AddCommand(taskCmd)
	addTaskCmd.Flags().StringVarP(&taskPriority, "priority", "p", model.PriorityMedium, "Priority: high, medium or low")
	listTaskCmd.Flags().StringVarP(&taskSearchQuery, "search", "q", "", "Only tasks containing this text")
	listTaskCmd.Flags().IntVar(&taskPageSize, "limit", 20, "Set the number of tasks to display per page (-1 for all)")
}
