package profile

import (
	"fmt"
	"github.com/burenotti/go_fitness_backend/internal/domain"
	"github.com/r3labs/diff"
	"math"
	"strings"
	"time"
)

const (
	EventUpdated       = "profile.updated"
	EventWeightChanged = "profile.weight_changed"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Goal string

const (
	GoalWeightLoss  Goal = "weight_loss"
	GoalMuscleGain  Goal = "muscle_gain"
	GoalMaintenance Goal = "maintenance"
)

type DailyGoals struct {
	Steps    int `json:"steps" diff:"steps" validate:"gt=0"`
	Calories int `json:"calories" diff:"calories" validate:"gt=0"`
	Workouts int `json:"workouts" diff:"workouts" validate:"gt=0"`
	Water    int `json:"water" diff:"water" validate:"gt=0"`
}

type Profile struct {
	UserID     string     `json:"user_id" diff:"-"`
	Name       string     `json:"name" diff:"name" validate:"required,notblank"`
	Age        int        `json:"age" diff:"age" validate:"gt=0,lte=150"`
	Gender     Gender     `json:"gender" diff:"gender" validate:"oneof=male female other"`
	Weight     float64    `json:"weight" diff:"weight" validate:"gt=0"`
	Height     float64    `json:"height" diff:"height" validate:"gt=0"`
	Goal       Goal       `json:"goal" diff:"goal" validate:"oneof=weight_loss muscle_gain maintenance"`
	DailyGoals DailyGoals `json:"daily_goals" diff:"daily_goals"`
}

func (p Profile) Validate() error {
	return domain.Validate(p)
}

// BMI returns weight / height^2 with height converted to meters.
func (p Profile) BMI() float64 {
	meters := p.Height / 100
	if meters <= 0 {
		return 0
	}
	return p.Weight / (meters * meters)
}

type BMICategory string

const (
	Underweight  BMICategory = "Underweight"
	NormalWeight BMICategory = "Normal weight"
	Overweight   BMICategory = "Overweight"
	Obese        BMICategory = "Obese"
)

func CategoryOf(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// RoundBMI rounds to one decimal place.
func RoundBMI(bmi float64) float64 {
	return math.Round(bmi*10) / 10
}

// Changes lists the dotted paths of fields that differ between p and next.
func (p Profile) Changes(next Profile) ([]string, error) {
	changelog, err := diff.Diff(p, next)
	if err != nil {
		return nil, fmt.Errorf("diff profile: %w", err)
	}
	paths := make([]string, 0, len(changelog))
	for _, c := range changelog {
		paths = append(paths, strings.Join(c.Path, "."))
	}
	return paths, nil
}

type UpdatedEvent struct {
	At      time.Time
	UserID  string
	Changed []string
}

func (e UpdatedEvent) Type() string {
	return EventUpdated
}

func (e UpdatedEvent) PublishedAt() time.Time {
	return e.At
}

type WeightChangedEvent struct {
	At     time.Time
	UserID string
	From   float64
	To     float64
}

func (e WeightChangedEvent) Type() string {
	return EventWeightChanged
}

func (e WeightChangedEvent) PublishedAt() time.Time {
	return e.At
}
