package profile_test

import (
	"testing"

	"github.com/burenotti/go_fitness_backend/internal/domain"
	"github.com/burenotti/go_fitness_backend/internal/domain/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() profile.Profile {
	return profile.Profile{
		UserID: "1",
		Name:   "John Doe",
		Age:    30,
		Gender: profile.GenderMale,
		Weight: 80,
		Height: 180,
		Goal:   profile.GoalWeightLoss,
		DailyGoals: profile.DailyGoals{
			Steps:    10000,
			Calories: 2000,
			Workouts: 1,
			Water:    8,
		},
	}
}

func TestProfile_BMI(t *testing.T) {
	p := sampleProfile()
	assert.InDelta(t, 24.69, p.BMI(), 0.01)
	assert.Equal(t, 24.7, profile.RoundBMI(p.BMI()))
	assert.Equal(t, profile.NormalWeight, profile.CategoryOf(p.BMI()))

	p.Height = 0
	assert.Zero(t, p.BMI())
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		bmi  float64
		want profile.BMICategory
	}{
		{17.9, profile.Underweight},
		{18.5, profile.NormalWeight},
		{24.99, profile.NormalWeight},
		{25, profile.Overweight},
		{29.9, profile.Overweight},
		{30, profile.Obese},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, profile.CategoryOf(tc.bmi), "bmi %v", tc.bmi)
	}
}

func TestProfile_Validate(t *testing.T) {
	require.NoError(t, sampleProfile().Validate())

	p := sampleProfile()
	p.Gender = "robot"
	p.DailyGoals.Calories = 0
	err := p.Validate()
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "gender")
	assert.Contains(t, err.Error(), "daily_goals.calories")
}

func TestProfile_Changes(t *testing.T) {
	before := sampleProfile()
	after := before
	after.Name = "Jane Doe"
	after.DailyGoals.Steps = 12000
	after.UserID = "ignored"

	changed, err := before.Changes(after)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"name", "daily_goals.steps"}, changed)

	changed, err = before.Changes(before)
	require.NoError(t, err)
	assert.Empty(t, changed)
}
