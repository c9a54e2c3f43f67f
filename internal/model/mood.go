package model

import "time"

type Mood struct {
	ID        string    `json:"id"`
	Value     int       `json:"value"` // 1..5
	Emoji     string    `json:"emoji"`
	Word      string    `json:"word"`
	Timestamp string    `json:"timestamp"`
	Date      time.Time `json:"date"`
}

type MoodDraft struct {
	Value int
}

const (
	MoodMin     = 1
	MoodMax     = 5
	MoodDefault = 3
)

var moodFaces = map[int]string{
	1: "😢",
	2: "☹️",
	3: "😐",
	4: "🙂",
	5: "😁",
}

var moodWords = map[int]string{
	1: "Very Bad",
	2: "Bad",
	3: "Neutral",
	4: "Good",
	5: "Great",
}

// NormalizeMood maps anything outside [MoodMin, MoodMax] to MoodDefault.
func NormalizeMood(value int) int {
	if value < MoodMin || value > MoodMax {
		return MoodDefault
	}
	return value
}

func MoodEmoji(value int) string {
	return moodFaces[NormalizeMood(value)]
}

func MoodWord(value int) string {
	return moodWords[NormalizeMood(value)]
}
