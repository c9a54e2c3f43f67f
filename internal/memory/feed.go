// Package memory builds the "memories" feed from the journal collections.
package memory

import (
	"fmt"
	"sort"

	"github.com/nakachan-ing/dayspark/internal/model"
)

// MaxItems is the size of the feed shown to the user.
const MaxItems = 6

type Sources struct {
	Notes     []model.Note
	Photos    []model.Photo
	Moods     []model.Mood
	QuickLogs []model.QuickLog
}

// Build merges the sources newest first and keeps at most limit entries
// (MaxItems when limit is out of range). Entries with equal dates keep the
// order notes, photos, moods, quick logs, and stored order within a kind.
func Build(src Sources, limit int) []model.Memory {
	if limit <= 0 || limit > MaxItems {
		limit = MaxItems
	}

	all := make([]model.Memory, 0, len(src.Notes)+len(src.Photos)+len(src.Moods)+len(src.QuickLogs))
	for _, n := range src.Notes {
		all = append(all, model.Memory{Kind: model.KindNote, Text: n.Text, Date: n.CreatedAt})
	}
	for _, p := range src.Photos {
		all = append(all, model.Memory{Kind: model.KindPhoto, Text: p.Caption, Date: p.Date})
	}
	for _, m := range src.Moods {
		all = append(all, model.Memory{Kind: model.KindMood, Text: fmt.Sprintf("Felt %s %s", m.Emoji, m.Word), Date: m.Date})
	}
	for _, l := range src.QuickLogs {
		all = append(all, model.Memory{Kind: model.KindQuickLog, Text: l.Text, Date: l.Date})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date)
	})

	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// Icon is the marker shown next to a memory of the given kind.
func Icon(kind string) string {
	switch kind {
	case model.KindNote:
		return "📝"
	case model.KindPhoto:
		return "📷"
	case model.KindMood:
		return "😊"
	case model.KindQuickLog:
		return "⚡"
	default:
		return "•"
	}
}
