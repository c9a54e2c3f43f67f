package util

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nakachan-ing/dayspark/internal/model"
)

var priorityRank = map[string]int{
	model.PriorityHigh:   0,
	model.PriorityMedium: 1,
	model.PriorityLow:    2,
}

func rank(priority string) int {
	if r, ok := priorityRank[priority]; ok {
		return r
	}
	return priorityRank[model.PriorityMedium]
}

// SortTasks returns the display order: open tasks before done ones, then
// high < medium < low. The input slice is not modified.
func SortTasks(tasks []model.Task) []model.Task {
	sorted := make([]model.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Done != b.Done {
			return !a.Done
		}
		return rank(a.Priority) < rank(b.Priority)
	})
	return sorted
}

// FilterTasks keeps tasks whose text contains query, ignoring case.
func FilterTasks(tasks []model.Task, query string) []model.Task {
	if query == "" {
		return tasks
	}

	query = strings.ToLower(query) // 大文字小文字を無視
	filtered := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Text), query) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// SortSchedule orders items by their HH:MM time. Stored order breaks ties.
func SortSchedule(items []model.ScheduleItem) []model.ScheduleItem {
	sorted := make([]model.ScheduleItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	return sorted
}

// ParseClock validates a 24h HH:MM string.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}

// FormatTime12h turns "14:05" into "2:05 PM". Unparsable input is returned as is.
func FormatTime12h(s string) string {
	hour, minute, err := ParseClock(s)
	if err != nil {
		return s
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, ampm)
}
