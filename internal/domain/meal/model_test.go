package meal_test

import (
	"testing"
	"time"

	"github.com/burenotti/go_fitness_backend/internal/domain"
	"github.com/burenotti/go_fitness_backend/internal/domain/calendar"
	"github.com/burenotti/go_fitness_backend/internal/domain/meal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMacros(t *testing.T) {
	m := meal.Macros{Protein: 15, Carbs: 60, Fat: 5}

	assert.Equal(t, 80.0, m.Grams())
	assert.Equal(t, meal.Macros{Protein: 60, Carbs: 240, Fat: 45}, m.Kcal())
	assert.Equal(t, meal.Macros{Protein: 30, Carbs: 120, Fat: 10}, m.Add(m))
}

func TestInput_Validate(t *testing.T) {
	valid := meal.Input{
		Date:     calendar.Date(2024, 6, 10),
		Name:     "Chicken salad",
		Calories: 450,
		Protein:  35,
		Carbs:    20,
		Fat:      25,
		MealType: meal.Lunch,
	}
	require.NoError(t, valid.Validate())

	zero := valid
	zero.Calories = 0
	assert.NoError(t, zero.Validate(), "zero calories are allowed")

	tests := map[string]func(in *meal.Input){
		"no date":       func(in *meal.Input) { in.Date = calendar.Day{} },
		"no name":       func(in *meal.Input) { in.Name = "" },
		"blank name":    func(in *meal.Input) { in.Name = "   " },
		"negative fat":  func(in *meal.Input) { in.Fat = -1 },
		"unknown slot":  func(in *meal.Input) { in.MealType = "brunch" },
		"negative kcal": func(in *meal.Input) { in.Calories = -10 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			in := valid
			mutate(&in)
			assert.ErrorIs(t, in.Validate(), domain.ErrValidation)
		})
	}
}

func TestNew(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60))
	m := meal.New("m1", meal.Input{Date: calendar.Date(2024, 6, 10), Name: "Shake", Protein: 30, MealType: meal.Snack}, now)

	assert.Equal(t, "m1", m.MealID)
	assert.Equal(t, meal.Macros{Protein: 30}, m.Macros())
	assert.True(t, m.CreatedAt.Equal(now))
}
