package workout

import (
	"github.com/burenotti/go_fitness_backend/internal/domain"
	"github.com/burenotti/go_fitness_backend/internal/domain/calendar"
	"time"
)

const EventRecorded = "workout.recorded"

// SuggestedTypes is the vocabulary offered to the user. Type stays free text.
var SuggestedTypes = []string{
	"Running",
	"Walking",
	"Cycling",
	"Swimming",
	"Strength Training",
	"HIIT",
	"Yoga",
	"Pilates",
	"Hiking",
	"Dancing",
	"Sports",
	"Other",
}

type Input struct {
	Date           calendar.Day `json:"date" validate:"required"`
	Type           string       `json:"type" validate:"required,notblank"`
	Duration       int          `json:"duration" validate:"gt=0"`
	CaloriesBurned int          `json:"calories_burned" validate:"gt=0"`
	Notes          string       `json:"notes"`
}

func (in Input) Validate() error {
	return domain.Validate(in)
}

type Workout struct {
	WorkoutID      string
	Date           calendar.Day
	Type           string
	Duration       int
	CaloriesBurned int
	Notes          string
	CreatedAt      time.Time
}

func New(workoutID string, in Input, now time.Time) Workout {
	return Workout{
		WorkoutID:      workoutID,
		Date:           in.Date,
		Type:           in.Type,
		Duration:       in.Duration,
		CaloriesBurned: in.CaloriesBurned,
		Notes:          in.Notes,
		CreatedAt:      now.UTC(),
	}
}

type RecordedEvent struct {
	At             time.Time
	WorkoutID      string
	Date           calendar.Day
	Activity       string
	Duration       int
	CaloriesBurned int
}

func (e RecordedEvent) Type() string {
	return EventRecorded
}

func (e RecordedEvent) PublishedAt() time.Time {
	return e.At
}
