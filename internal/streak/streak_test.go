package streak

import (
	"testing"
	"time"

	"github.com/nakachan-ing/dayspark/internal/model"
)

func stamp(t time.Time) *string {
	s := t.Format(time.RFC3339)
	return &s
}

func TestAdvanceFirstActivity(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	next, changed := Advance(model.Streak{}, now)
	if !changed {
		t.Fatalf("expected change on first activity")
	}
	if next.Count != 1 {
		t.Fatalf("expected count 1, got %d", next.Count)
	}
	if next.LastDate == nil || *next.LastDate != now.Format(time.RFC3339) {
		t.Fatalf("expected lastDate %s, got %v", now.Format(time.RFC3339), next.LastDate)
	}
}

func TestAdvanceConsecutiveDay(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	yesterday := time.Date(2025, 3, 9, 23, 59, 0, 0, time.Local)
	next, changed := Advance(model.Streak{Count: 4, LastDate: stamp(yesterday)}, now)
	if !changed || next.Count != 5 {
		t.Fatalf("expected count 5 changed, got %d changed=%v", next.Count, changed)
	}
	if *next.LastDate != now.Format(time.RFC3339) {
		t.Fatalf("expected lastDate today, got %s", *next.LastDate)
	}
}

func TestAdvanceGapResets(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	twoDaysAgo := time.Date(2025, 3, 8, 12, 0, 0, 0, time.Local)
	next, changed := Advance(model.Streak{Count: 9, LastDate: stamp(twoDaysAgo)}, now)
	if !changed || next.Count != 1 {
		t.Fatalf("expected reset to 1, got %d changed=%v", next.Count, changed)
	}
}

func TestAdvanceSameDayIsIdempotent(t *testing.T) {
	morning := time.Date(2025, 3, 10, 0, 5, 0, 0, time.Local)
	evening := time.Date(2025, 3, 10, 23, 55, 0, 0, time.Local)
	rec := model.Streak{Count: 3, LastDate: stamp(morning)}

	next, changed := Advance(rec, evening)
	if changed {
		t.Fatalf("expected no change for same day")
	}
	if next.Count != 3 || *next.LastDate != *rec.LastDate {
		t.Fatalf("expected record unchanged, got %+v", next)
	}
}

func TestAdvanceUsesCalendarDaysNotDuration(t *testing.T) {
	// 23:50 to 00:10 is twenty minutes but a new calendar day.
	late := time.Date(2025, 3, 9, 23, 50, 0, 0, time.Local)
	early := time.Date(2025, 3, 10, 0, 10, 0, 0, time.Local)
	next, changed := Advance(model.Streak{Count: 2, LastDate: stamp(late)}, early)
	if !changed || next.Count != 3 {
		t.Fatalf("expected count 3, got %d changed=%v", next.Count, changed)
	}

	// 00:10 to 23:50 the next day is almost 48h but still consecutive.
	nextNight := time.Date(2025, 3, 11, 23, 50, 0, 0, time.Local)
	next, changed = Advance(model.Streak{Count: 2, LastDate: stamp(early)}, nextNight)
	if !changed || next.Count != 3 {
		t.Fatalf("expected count 3 on the next calendar day, got %d changed=%v", next.Count, changed)
	}

	// 23:50 to 00:10 two days later is under 25h but skips a day.
	lateNight := time.Date(2025, 3, 10, 23, 50, 0, 0, time.Local)
	afterSkip := time.Date(2025, 3, 12, 0, 10, 0, 0, time.Local)
	next, changed = Advance(model.Streak{Count: 2, LastDate: stamp(lateNight)}, afterSkip)
	if !changed || next.Count != 1 {
		t.Fatalf("expected reset after skipped day, got %d changed=%v", next.Count, changed)
	}
}

func TestAdvanceComparesInLocalZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// 2025-03-09 20:00 UTC is already 2025-03-10 in Tokyo.
	last := time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, tokyo)
	_, changed := Advance(model.Streak{Count: 1, LastDate: stamp(last)}, now)
	if changed {
		t.Fatalf("expected same local day to be a no-op")
	}
}

func TestAdvanceUnparsableDateStartsOver(t *testing.T) {
	bad := "yesterday-ish"
	next, changed := Advance(model.Streak{Count: 7, LastDate: &bad}, time.Now())
	if !changed || next.Count != 1 {
		t.Fatalf("expected reset to 1, got %d", next.Count)
	}
}

func TestCurrent(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	cases := []struct {
		name string
		rec  model.Streak
		want int
	}{
		{"empty", model.Streak{}, 0},
		{"today", model.Streak{Count: 4, LastDate: stamp(now.Add(-time.Hour))}, 4},
		{"yesterday", model.Streak{Count: 4, LastDate: stamp(now.AddDate(0, 0, -1))}, 4},
		{"broken", model.Streak{Count: 4, LastDate: stamp(now.AddDate(0, 0, -2))}, 0},
	}
	for _, tc := range cases {
		if got := Current(tc.rec, now); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}
