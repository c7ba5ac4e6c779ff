package tracker

import (
	"context"
	"github.com/burenotti/go_fitness_backend/internal/domain/calendar"
	"github.com/burenotti/go_fitness_backend/internal/domain/meal"
	"github.com/burenotti/go_fitness_backend/internal/domain/stats"
	"github.com/burenotti/go_fitness_backend/internal/domain/weight"
	"github.com/burenotti/go_fitness_backend/internal/domain/workout"
)

// Fixtures is a complete set of records loaded with Seed. Stats are taken as
// given and are not recomputed from workouts and meals.
type Fixtures struct {
	Workouts []workout.Workout
	Meals    []meal.Meal
	Weights  []weight.Entry
	Stats    []stats.Daily
}

// Seed replaces every record except the profile. The profile weight follows
// the latest weight entry, if any.
func (s *Service) Seed(ctx context.Context, uow *UoW, f Fixtures) error {
	return uow.Atomic(ctx, func(ctx *AtomicContext) error {
		st := ctx.State()
		st.Workouts = append([]workout.Workout(nil), f.Workouts...)
		st.Meals = append([]meal.Meal(nil), f.Meals...)
		st.Weights = nil
		for _, e := range f.Weights {
			st.Weights = weight.Upsert(st.Weights, e)
		}
		if sorted := weight.SortedByDate(st.Weights); len(sorted) > 0 {
			st.Profile.Weight = sorted[len(sorted)-1].Weight
		}
		st.Stats = make(map[calendar.Day]stats.Daily, len(f.Stats))
		for _, d := range f.Stats {
			st.Stats[d.Day] = d
		}

		s.logger.Info("tracker seeded",
			"workouts", len(st.Workouts),
			"meals", len(st.Meals),
			"weights", len(st.Weights),
			"days", len(st.Stats),
		)
		return ctx.Commit()
	})
}

// SampleFixtures is a week of demo data ending on today.
func (s *Service) SampleFixtures() Fixtures {
	now := s.clock()
	today := s.Today()
	ago := func(n int) calendar.Day { return today.AddDays(-n) }

	w := func(id string, day calendar.Day, kind string, minutes, kcal int, notes string) workout.Workout {
		return workout.New(id, workout.Input{
			Date:           day,
			Type:           kind,
			Duration:       minutes,
			CaloriesBurned: kcal,
			Notes:          notes,
		}, now)
	}
	m := func(id string, day calendar.Day, name string, kcal int, p, c, f float64, slot meal.Slot) meal.Meal {
		return meal.New(id, meal.Input{
			Date:     day,
			Name:     name,
			Calories: kcal,
			Protein:  p,
			Carbs:    c,
			Fat:      f,
			MealType: slot,
		}, now)
	}
	kg := func(day calendar.Day, v float64) weight.Entry {
		return weight.New(weight.Input{Date: day, Weight: v}, now)
	}

	return Fixtures{
		Workouts: []workout.Workout{
			w(s.newID(), ago(0), "Running", 30, 300, "Morning run in the park"),
			w(s.newID(), ago(1), "Strength Training", 45, 250, "Upper body workout"),
			w(s.newID(), ago(2), "Yoga", 60, 150, "Evening yoga session"),
			w(s.newID(), ago(3), "Cycling", 40, 400, "Bike ride around the lake"),
		},
		Meals: []meal.Meal{
			m(s.newID(), ago(0), "Oatmeal with fruits", 350, 15, 60, 5, meal.Breakfast),
			m(s.newID(), ago(0), "Chicken salad", 450, 35, 20, 25, meal.Lunch),
			m(s.newID(), ago(0), "Salmon with vegetables", 550, 40, 25, 30, meal.Dinner),
			m(s.newID(), ago(0), "Protein shake", 200, 30, 5, 3, meal.Snack),
			m(s.newID(), ago(1), "Eggs and toast", 400, 20, 35, 15, meal.Breakfast),
		},
		Weights: []weight.Entry{
			kg(ago(6), 82.5),
			kg(ago(5), 82.2),
			kg(ago(4), 82.0),
			kg(ago(3), 81.7),
			kg(ago(2), 81.5),
			kg(ago(1), 81.0),
			kg(ago(0), 80.8),
		},
		Stats: []stats.Daily{
			{Day: ago(0), CaloriesConsumed: 1550, CaloriesBurned: 300, Steps: 8500, ActiveMinutes: 45, WorkoutsCompleted: 1, WaterIntake: 6},
			{Day: ago(1), CaloriesConsumed: 1800, CaloriesBurned: 250, Steps: 7500, ActiveMinutes: 40, WorkoutsCompleted: 1, WaterIntake: 8},
			{Day: ago(2), CaloriesConsumed: 2100, CaloriesBurned: 150, Steps: 5000, ActiveMinutes: 30, WorkoutsCompleted: 1, WaterIntake: 5},
			{Day: ago(3), CaloriesConsumed: 1700, CaloriesBurned: 400, Steps: 9000, ActiveMinutes: 60, WorkoutsCompleted: 1, WaterIntake: 7},
		},
	}
}
