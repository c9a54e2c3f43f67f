package model

// Streak is the singleton consecutive-day counter.
type Streak struct {
	Count    int     `json:"count"`
	LastDate *string `json:"lastDate"` // RFC 3339, nil before the first activity
}
