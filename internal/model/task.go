package model

import "time"

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
	PriorityNormal = "normal" // schedule only
)

type Task struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Priority string    `json:"priority"` // high, medium, low
	Done     bool      `json:"done"`
	Date     time.Time `json:"date"`
}

type TaskDraft struct {
	Text     string `validate:"required"`
	Priority string `validate:"omitempty,oneof=high medium low"`
}

// ScheduleItem is an event of the daily schedule. Items are addressed by ID.
type ScheduleItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Time     string `json:"time"`     // HH:MM, 24h
	Priority string `json:"priority"` // low, normal, high
	Done     bool   `json:"done"`
}

type ScheduleDraft struct {
	Title    string `validate:"required"`
	Time     string `validate:"required,clock"`
	Priority string `validate:"omitempty,oneof=low normal high"`
}
