package cmd

import (
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nakachan-ing/dayspark/internal/model"
)

func newTable(headers ...string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleDouble)
	t.Style().Options.SeparateRows = false

	row := make(table.Row, 0, len(headers))
	for _, h := range headers {
		row = append(row, text.FgGreen.Sprintf("%s", h))
	}
	t.AppendHeader(row)
	return t
}

func formatDate(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

func priorityColored(priority string) string {
	switch priority {
	case model.PriorityHigh:
		return text.FgHiRed.Sprintf("%s", priority)
	case model.PriorityMedium, model.PriorityNormal:
		return text.FgHiYellow.Sprintf("%s", priority)
	case model.PriorityLow:
		return text.FgHiBlue.Sprintf("%s", priority)
	default:
		return priority
	}
}

func doneMark(done bool) string {
	if done {
		return text.FgHiGreen.Sprintf("✔")
	}
	return " "
}

// limitRows keeps the first n items; n <= 0 keeps everything.
func limitRows[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[:n]
}
