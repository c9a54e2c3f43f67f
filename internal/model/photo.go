package model

import "time"

type Photo struct {
	ID      string    `json:"id"`
	Src     string    `json:"src"` // data URI
	Caption string    `json:"caption"`
	Date    time.Time `json:"date"`
}

type PhotoDraft struct {
	Src       string `validate:"required,startswith=data:"`
	Caption   string
	MarkToday bool
}

const DefaultCaption = "No caption"
