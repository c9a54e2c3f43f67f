package model

import "time"

type Note struct {
	ID        string    `json:"id"`        // ULID
	Text      string    `json:"text"`
	Timestamp string    `json:"timestamp"` // 1/2/2006, 3:04:05 PM
	CreatedAt time.Time `json:"createdAt"`
}

type NoteDraft struct {
	Text string `validate:"required"`
}

// QuickLog is a one-line entry saved from the quick-log box.
type QuickLog struct {
	ID   string    `json:"id"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

type QuickLogDraft struct {
	Text string `validate:"required"`
}

// DisplayTimestamp is the layout used for the human readable timestamp stored with notes and moods.
const DisplayTimestamp = "1/2/2006, 3:04:05 PM"
