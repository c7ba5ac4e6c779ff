package weight

import (
	"github.com/burenotti/go_fitness_backend/internal/domain"
	"github.com/burenotti/go_fitness_backend/internal/domain/calendar"
	"sort"
	"time"
)

const EventRecorded = "weight.recorded"

type Input struct {
	Date   calendar.Day `json:"date" validate:"required"`
	Weight float64      `json:"weight" validate:"gt=0"`
}

func (in Input) Validate() error {
	return domain.Validate(in)
}

// Entry is a body weight measurement in kilograms. Its Date is the natural
// key: a day holds at most one entry.
type Entry struct {
	Date       calendar.Day
	Weight     float64
	RecordedAt time.Time
}

func New(in Input, now time.Time) Entry {
	return Entry{
		Date:       in.Date,
		Weight:     in.Weight,
		RecordedAt: now.UTC(),
	}
}

// Upsert drops any entry for e's day and appends e.
func Upsert(entries []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	for _, existing := range entries {
		if existing.Date != e.Date {
			out = append(out, existing)
		}
	}
	return append(out, e)
}

// SortedByDate returns a copy of entries ordered by ascending date.
func SortedByDate(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

type Direction string

const (
	Up      Direction = "up"
	Down    Direction = "down"
	Neutral Direction = "neutral"
)

type Trend struct {
	Initial       float64   `json:"initial"`
	Current       float64   `json:"current"`
	Change        float64   `json:"change"`
	PercentChange float64   `json:"percent_change"`
	Direction     Direction `json:"direction"`
}

// TrendOf compares the earliest and latest entries. Without entries both ends
// fall back to the given weight.
func TrendOf(entries []Entry, fallback float64) Trend {
	initial, current := fallback, fallback
	if len(entries) > 0 {
		sorted := SortedByDate(entries)
		initial = sorted[0].Weight
		current = sorted[len(sorted)-1].Weight
	}

	t := Trend{
		Initial:   initial,
		Current:   current,
		Change:    current - initial,
		Direction: Neutral,
	}
	if initial > 0 {
		t.PercentChange = t.Change / initial * 100
	}
	switch {
	case t.Change < 0:
		t.Direction = Down
	case t.Change > 0:
		t.Direction = Up
	}
	return t
}

type RecordedEvent struct {
	At     time.Time
	Date   calendar.Day
	Weight float64
}

func (e RecordedEvent) Type() string {
	return EventRecorded
}

func (e RecordedEvent) PublishedAt() time.Time {
	return e.At
}
