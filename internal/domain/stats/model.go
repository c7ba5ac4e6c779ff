package stats

import (
	"fmt"
	"github.com/burenotti/go_fitness_backend/internal/domain"
	"github.com/burenotti/go_fitness_backend/internal/domain/calendar"
	"time"
)

var ErrStatsNotFound = fmt.Errorf("%w: no daily stats for the day", domain.ErrNotFound)

const EventUpdated = "stats.updated"

// ActiveMinutesTarget is the fixed daily target for active minutes.
const ActiveMinutesTarget = 60

// Daily aggregates everything recorded on one calendar day.
type Daily struct {
	Day               calendar.Day
	CaloriesConsumed  int
	CaloriesBurned    int
	Steps             int
	ActiveMinutes     int
	WorkoutsCompleted int
	WaterIntake       int
}

func New(day calendar.Day) Daily {
	return Daily{Day: day}
}

// Update carries the fields to overwrite. Nil fields are left untouched.
type Update struct {
	CaloriesConsumed  *int `json:"calories_consumed" validate:"omitempty,gte=0"`
	CaloriesBurned    *int `json:"calories_burned" validate:"omitempty,gte=0"`
	Steps             *int `json:"steps" validate:"omitempty,gte=0"`
	ActiveMinutes     *int `json:"active_minutes" validate:"omitempty,gte=0"`
	WorkoutsCompleted *int `json:"workouts_completed" validate:"omitempty,gte=0"`
	WaterIntake       *int `json:"water_intake" validate:"omitempty,gte=0"`
}

func (u Update) Validate() error {
	return domain.Validate(u)
}

func (u Update) IsEmpty() bool {
	return u == Update{}
}

// Merge returns d with every supplied field of u applied.
func (d Daily) Merge(u Update) Daily {
	apply := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&d.CaloriesConsumed, u.CaloriesConsumed)
	apply(&d.CaloriesBurned, u.CaloriesBurned)
	apply(&d.Steps, u.Steps)
	apply(&d.ActiveMinutes, u.ActiveMinutes)
	apply(&d.WorkoutsCompleted, u.WorkoutsCompleted)
	apply(&d.WaterIntake, u.WaterIntake)
	return d
}

// Value is a helper for building an Update from literals.
func Value(v int) *int {
	return &v
}

// Goals holds the thresholds progress is measured against.
type Goals struct {
	Steps    int
	Calories int
	Workouts int
	Water    int
}

type Progress struct {
	Steps         float64 `json:"steps"`
	ActiveMinutes float64 `json:"active_minutes"`
	Workouts      float64 `json:"workouts"`
	Water         float64 `json:"water"`
	Calories      float64 `json:"calories"`
}

// ProgressOf reports each counter as a percentage of its goal, capped at 100.
func (d Daily) ProgressOf(g Goals) Progress {
	return Progress{
		Steps:         percent(d.Steps, g.Steps),
		ActiveMinutes: percent(d.ActiveMinutes, ActiveMinutesTarget),
		Workouts:      percent(d.WorkoutsCompleted, g.Workouts),
		Water:         percent(d.WaterIntake, g.Water),
		Calories:      percent(d.CaloriesConsumed, g.Calories),
	}
}

func percent(value, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return min(100, float64(value)/float64(goal)*100)
}

type UpdatedEvent struct {
	At    time.Time
	Day   calendar.Day
	Stats Daily
}

func (e UpdatedEvent) Type() string {
	return EventUpdated
}

func (e UpdatedEvent) PublishedAt() time.Time {
	return e.At
}
