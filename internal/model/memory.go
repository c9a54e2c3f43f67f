package model

import "time"

const (
	KindNote     = "note"
	KindPhoto    = "photo"
	KindMood     = "mood"
	KindQuickLog = "log"
)

// Memory is one entry of the derived memories feed.
type Memory struct {
	Kind string    `json:"kind"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

type Stats struct {
	TotalTasks     int     `json:"totalTasks"`
	CompletedTasks int     `json:"completedTasks"`
	CompletionRate int     `json:"completionRate"` // percent
	TotalNotes     int     `json:"totalNotes"`
	TotalPhotos    int     `json:"totalPhotos"`
	TotalLogs      int     `json:"totalLogs"`
	TotalMoods     int     `json:"totalMoods"`
	AvgMood        float64 `json:"avgMood"`
	TotalEntries   int     `json:"totalEntries"`
}

// Export is the backup document written by `dayspark export`.
type Export struct {
	ID         string         `json:"id"`
	Notes      []Note         `json:"notes"`
	QuickLogs  []QuickLog     `json:"quickLogs"`
	Photos     []Photo        `json:"photos"`
	Schedule   []ScheduleItem `json:"schedule"`
	Tasks      []Task         `json:"tasks"`
	Moods      []Mood         `json:"moods"`
	Streak     Streak         `json:"streak"`
	Settings   Settings       `json:"settings"`
	ExportDate time.Time      `json:"exportDate"`
}
