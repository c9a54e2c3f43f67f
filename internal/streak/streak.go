// Package streak derives the consecutive-day activity counter.
package streak

import (
	"time"

	"github.com/nakachan-ing/dayspark/internal/model"
)

// Advance applies one activity at now to rec. Days are compared as calendar
// dates in now's location, never as elapsed 24h periods. changed is false when
// activity was already recorded today.
func Advance(rec model.Streak, now time.Time) (model.Streak, bool) {
	today := dateOf(now)

	last, ok := lastDay(rec, now.Location())
	if ok && last.Equal(today) {
		return rec, false
	}

	next := rec
	if ok && last.Equal(today.AddDate(0, 0, -1)) {
		next.Count = rec.Count + 1
	} else {
		next.Count = 1
	}
	stamp := now.Format(time.RFC3339)
	next.LastDate = &stamp
	return next, true
}

// Current is the count still alive at now: the stored count when the last
// activity was today or yesterday, zero once a day has been missed.
func Current(rec model.Streak, now time.Time) int {
	last, ok := lastDay(rec, now.Location())
	if !ok {
		return 0
	}
	today := dateOf(now)
	if last.Equal(today) || last.Equal(today.AddDate(0, 0, -1)) {
		return rec.Count
	}
	return 0
}

func lastDay(rec model.Streak, loc *time.Location) (time.Time, bool) {
	if rec.LastDate == nil || *rec.LastDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, *rec.LastDate)
	if err != nil {
		return time.Time{}, false
	}
	return dateOf(t.In(loc)), true
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
