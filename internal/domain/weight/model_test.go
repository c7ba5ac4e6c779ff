package weight_test

import (
	"testing"
	"time"

	"github.com/burenotti/go_fitness_backend/internal/domain/calendar"
	"github.com/burenotti/go_fitness_backend/internal/domain/weight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

func entry(day int, kg float64) weight.Entry {
	return weight.New(weight.Input{Date: calendar.Date(2024, 6, day), Weight: kg}, now)
}

func TestUpsert_ReplacesSameDay(t *testing.T) {
	entries := []weight.Entry{entry(1, 82), entry(2, 81.5)}

	entries = weight.Upsert(entries, entry(1, 81.9))

	require.Len(t, entries, 2)
	assert.Equal(t, entry(2, 81.5), entries[0])
	assert.Equal(t, entry(1, 81.9), entries[1])
}

func TestSortedByDate(t *testing.T) {
	entries := []weight.Entry{entry(5, 80), entry(1, 82), entry(3, 81)}

	sorted := weight.SortedByDate(entries)

	assert.Equal(t, []weight.Entry{entry(1, 82), entry(3, 81), entry(5, 80)}, sorted)
	assert.Equal(t, entry(5, 80), entries[0], "input must stay untouched")
}

func TestTrendOf(t *testing.T) {
	trend := weight.TrendOf([]weight.Entry{entry(7, 80.8), entry(1, 82.5), entry(4, 81.7)}, 0)

	assert.Equal(t, 82.5, trend.Initial)
	assert.Equal(t, 80.8, trend.Current)
	assert.InDelta(t, -1.7, trend.Change, 1e-9)
	assert.InDelta(t, -2.06, trend.PercentChange, 0.01)
	assert.Equal(t, weight.Down, trend.Direction)
}

func TestTrendOf_NoEntries(t *testing.T) {
	trend := weight.TrendOf(nil, 80)

	assert.Equal(t, weight.Trend{Initial: 80, Current: 80, Direction: weight.Neutral}, trend)
}

func TestTrendOf_Up(t *testing.T) {
	trend := weight.TrendOf([]weight.Entry{entry(1, 70), entry(2, 71)}, 0)
	assert.Equal(t, weight.Up, trend.Direction)
}
