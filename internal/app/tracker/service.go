package tracker

import (
	"context"
	"github.com/burenotti/go_fitness_backend/internal/adapter/storage"
	"github.com/burenotti/go_fitness_backend/internal/app/unitofwork"
	"github.com/burenotti/go_fitness_backend/internal/domain"
	"github.com/burenotti/go_fitness_backend/internal/domain/calendar"
	"github.com/burenotti/go_fitness_backend/internal/domain/meal"
	"github.com/burenotti/go_fitness_backend/internal/domain/profile"
	"github.com/burenotti/go_fitness_backend/internal/domain/stats"
	"github.com/burenotti/go_fitness_backend/internal/domain/weight"
	"github.com/burenotti/go_fitness_backend/internal/domain/workout"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"log/slog"
	"slices"
	"sort"
	"time"
)

type UoW = unitofwork.UnitOfWork[*AtomicContext]

// Service is the fitness state aggregator. It holds no state itself; every
// operation reads and writes through the unit of work it is given.
type Service struct {
	logger *slog.Logger
	clock  func() time.Time
	loc    *time.Location
	newID  func() string
}

type Option func(*Service)

func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithLocation sets the time zone "today" is evaluated in.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		s.loc = loc
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

func New(logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		logger: logger,
		clock:  time.Now,
		loc:    time.Local,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today is evaluated on every call.
func (s *Service) Today() calendar.Day {
	return calendar.Of(s.clock().In(s.loc))
}

func (s *Service) RecordWorkout(
	ctx context.Context,
	uow *UoW,
	in workout.Input,
) (w workout.Workout, err error) {
	if err := in.Validate(); err != nil {
		return workout.Workout{}, err
	}

	err = uow.Atomic(ctx, func(ctx *AtomicContext) error {
		now := s.clock()
		st := ctx.State()

		w = workout.New(s.newID(), in, now)
		st.Workouts = append(st.Workouts, w)

		cur := statsOf(st, in.Date)
		s.upsertStats(ctx, in.Date, stats.Update{
			CaloriesBurned:    stats.Value(cur.CaloriesBurned + in.CaloriesBurned),
			ActiveMinutes:     stats.Value(cur.ActiveMinutes + in.Duration),
			WorkoutsCompleted: stats.Value(cur.WorkoutsCompleted + 1),
		})

		ctx.PushEvent(workout.RecordedEvent{
			At:             now,
			WorkoutID:      w.WorkoutID,
			Date:           w.Date,
			Activity:       w.Type,
			Duration:       w.Duration,
			CaloriesBurned: w.CaloriesBurned,
		})
		return ctx.Commit()
	})
	return
}

func (s *Service) RecordMeal(
	ctx context.Context,
	uow *UoW,
	in meal.Input,
) (m meal.Meal, err error) {
	if err := in.Validate(); err != nil {
		return meal.Meal{}, err
	}

	err = uow.Atomic(ctx, func(ctx *AtomicContext) error {
		now := s.clock()
		st := ctx.State()

		m = meal.New(s.newID(), in, now)
		st.Meals = append(st.Meals, m)

		cur := statsOf(st, in.Date)
		s.upsertStats(ctx, in.Date, stats.Update{
			CaloriesConsumed: stats.Value(cur.CaloriesConsumed + in.Calories),
		})

		ctx.PushEvent(meal.RecordedEvent{
			At:       now,
			MealID:   m.MealID,
			Date:     m.Date,
			Name:     m.Name,
			Calories: m.Calories,
			MealType: m.MealType,
		})
		return ctx.Commit()
	})
	return
}

// RecordWeight keeps one entry per day and always moves the profile weight to
// the recorded value, whatever day it was logged for.
func (s *Service) RecordWeight(
	ctx context.Context,
	uow *UoW,
	in weight.Input,
) (e weight.Entry, err error) {
	if err := in.Validate(); err != nil {
		return weight.Entry{}, err
	}

	err = uow.Atomic(ctx, func(ctx *AtomicContext) error {
		now := s.clock()
		st := ctx.State()

		e = weight.New(in, now)
		st.Weights = weight.Upsert(st.Weights, e)

		previous := st.Profile.Weight
		st.Profile.Weight = e.Weight

		ctx.PushEvent(weight.RecordedEvent{At: now, Date: e.Date, Weight: e.Weight})
		if previous != e.Weight {
			ctx.PushEvent(profile.WeightChangedEvent{
				At:     now,
				UserID: st.Profile.UserID,
				From:   previous,
				To:     e.Weight,
			})
		}
		return ctx.Commit()
	})
	return
}

// UpdateProfile replaces the profile as a whole. The user id is not editable.
func (s *Service) UpdateProfile(
	ctx context.Context,
	uow *UoW,
	p profile.Profile,
) (updated profile.Profile, err error) {
	if err := p.Validate(); err != nil {
		return profile.Profile{}, err
	}

	err = uow.Atomic(ctx, func(ctx *AtomicContext) error {
		st := ctx.State()
		p.UserID = st.Profile.UserID

		changed, err := st.Profile.Changes(p)
		if err != nil {
			return err
		}

		st.Profile = p
		updated = p

		if len(changed) > 0 {
			ctx.PushEvent(profile.UpdatedEvent{
				At:      s.clock(),
				UserID:  p.UserID,
				Changed: changed,
			})
		}
		return ctx.Commit()
	})
	return
}

// UpsertDailyStats creates the day's stats zeroed if needed and then
// overwrites only the fields present in u.
func (s *Service) UpsertDailyStats(
	ctx context.Context,
	uow *UoW,
	day calendar.Day,
	u stats.Update,
) (d stats.Daily, err error) {
	if day.IsZero() {
		return stats.Daily{}, domain.Invalid("date", "required", "")
	}
	if err := u.Validate(); err != nil {
		return stats.Daily{}, err
	}

	err = uow.Atomic(ctx, func(ctx *AtomicContext) error {
		d = s.upsertStats(ctx, day, u)
		return ctx.Commit()
	})
	return
}

func (s *Service) upsertStats(ctx *AtomicContext, day calendar.Day, u stats.Update) stats.Daily {
	st := ctx.State()
	next := statsOf(st, day).Merge(u)
	st.Stats[day] = next

	ctx.PushEvent(stats.UpdatedEvent{At: s.clock(), Day: day, Stats: next})
	s.logger.Debug("daily stats updated", "day", day.String())
	return next
}

func statsOf(st *storage.State, day calendar.Day) stats.Daily {
	if d, ok := st.Stats[day]; ok {
		return d
	}
	return stats.New(day)
}

func (s *Service) view(ctx context.Context, uow *UoW, read func(st *storage.State)) error {
	return uow.Atomic(ctx, func(ctx *AtomicContext) error {
		read(ctx.State())
		return nil
	})
}

// TodayStats returns stats.ErrStatsNotFound until something is recorded for
// today.
func (s *Service) TodayStats(ctx context.Context, uow *UoW) (stats.Daily, error) {
	var (
		d     stats.Daily
		found bool
	)
	if err := s.view(ctx, uow, func(st *storage.State) {
		d, found = st.Stats[s.Today()]
	}); err != nil {
		return stats.Daily{}, err
	}
	if !found {
		return stats.Daily{}, stats.ErrStatsNotFound
	}
	return d, nil
}

// RemainingCalories credits calories burned back to the daily budget.
func (s *Service) RemainingCalories(ctx context.Context, uow *UoW) (int, error) {
	b, err := s.CalorieBudget(ctx, uow)
	return b.Remaining, err
}

type CalorieBudget struct {
	Day       calendar.Day
	Goal      int
	Remaining int
}

// CalorieBudget reads the calorie goal and what is left of it for today from
// the same snapshot.
func (s *Service) CalorieBudget(ctx context.Context, uow *UoW) (b CalorieBudget, err error) {
	today := s.Today()
	err = s.view(ctx, uow, func(st *storage.State) {
		b = CalorieBudget{
			Day:       today,
			Goal:      st.Profile.DailyGoals.Calories,
			Remaining: remainingCalories(st, today),
		}
	})
	return
}

func remainingCalories(st *storage.State, day calendar.Day) int {
	goal := st.Profile.DailyGoals.Calories
	d, ok := st.Stats[day]
	if !ok {
		return goal
	}
	return goal - d.CaloriesConsumed + d.CaloriesBurned
}

func (s *Service) MacroTotals(ctx context.Context, uow *UoW, day calendar.Day) (totals meal.Macros, err error) {
	err = s.view(ctx, uow, func(st *storage.State) {
		totals = macroTotals(mealsOn(st.Meals, day))
	})
	return
}

func mealsOn(meals []meal.Meal, day calendar.Day) []meal.Meal {
	return lo.Filter(meals, func(m meal.Meal, _ int) bool {
		return m.Date == day
	})
}

func macroTotals(meals []meal.Meal) meal.Macros {
	return lo.Reduce(meals, func(acc meal.Macros, m meal.Meal, _ int) meal.Macros {
		return acc.Add(m.Macros())
	}, meal.Macros{})
}

func (s *Service) Profile(ctx context.Context, uow *UoW) (p profile.Profile, err error) {
	err = s.view(ctx, uow, func(st *storage.State) {
		p = st.Profile
	})
	return
}

// Workouts lists workouts newest first. Workouts on the same day keep the
// most recently recorded one first.
func (s *Service) Workouts(ctx context.Context, uow *UoW) (ws []workout.Workout, err error) {
	err = s.view(ctx, uow, func(st *storage.State) {
		ws = slices.Clone(st.Workouts)
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(ws)
	sort.SliceStable(ws, func(i, j int) bool {
		return ws[i].Date.After(ws[j].Date)
	})
	return ws, nil
}

type MealLog struct {
	Day      calendar.Day
	Meals    []meal.Meal
	BySlot   map[meal.Slot][]meal.Meal
	Macros   meal.Macros
	Calories int
}

func (s *Service) Meals(ctx context.Context, uow *UoW, day calendar.Day) (log MealLog, err error) {
	err = s.view(ctx, uow, func(st *storage.State) {
		log.Meals = mealsOn(st.Meals, day)
	})
	if err != nil {
		return MealLog{}, err
	}

	log.Day = day
	log.BySlot = make(map[meal.Slot][]meal.Meal, len(meal.Slots))
	for _, slot := range meal.Slots {
		log.BySlot[slot] = []meal.Meal{}
	}
	for slot, meals := range lo.GroupBy(log.Meals, func(m meal.Meal) meal.Slot { return m.MealType }) {
		log.BySlot[slot] = meals
	}
	log.Macros = macroTotals(log.Meals)
	log.Calories = lo.SumBy(log.Meals, func(m meal.Meal) int { return m.Calories })
	return log, nil
}

func (s *Service) WeightHistory(ctx context.Context, uow *UoW) (entries []weight.Entry, err error) {
	err = s.view(ctx, uow, func(st *storage.State) {
		entries = weight.SortedByDate(st.Weights)
	})
	return
}

func (s *Service) WeightTrend(ctx context.Context, uow *UoW) (t weight.Trend, err error) {
	err = s.view(ctx, uow, func(st *storage.State) {
		t = weight.TrendOf(st.Weights, st.Profile.Weight)
	})
	return
}

// DailyStats returns the stats recorded between from and to inclusive, in
// ascending order. Days without stats are skipped.
func (s *Service) DailyStats(
	ctx context.Context,
	uow *UoW,
	from, to calendar.Day,
) (days []stats.Daily, err error) {
	if from.IsZero() || to.IsZero() {
		return nil, domain.Invalid("from", "required", "")
	}
	if to.Before(from) {
		return nil, domain.Invalid("to", "gtefield", "from")
	}

	err = s.view(ctx, uow, func(st *storage.State) {
		days = lo.Filter(lo.Values(st.Stats), func(d stats.Daily, _ int) bool {
			return !d.Day.Before(from) && !d.Day.After(to)
		})
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(days, func(a, b stats.Daily) int {
		return a.Day.Compare(b.Day)
	})
	return days, nil
}

// RecentDays is how far back the dashboard looks for weight entries.
const RecentDays = 7

type Dashboard struct {
	Day               calendar.Day
	Stats             stats.Daily
	HasStats          bool
	RemainingCalories int
	Macros            meal.Macros
	Progress          stats.Progress
	Goals             profile.DailyGoals
	BMI               float64
	BMICategory       profile.BMICategory
	Weight            float64
	RecentWeights     []weight.Entry
}

func (s *Service) Dashboard(ctx context.Context, uow *UoW) (dash Dashboard, err error) {
	today := s.Today()
	since := today.AddDays(-(RecentDays - 1))

	err = s.view(ctx, uow, func(st *storage.State) {
		d, ok := st.Stats[today]
		if !ok {
			d = stats.New(today)
		}
		goals := st.Profile.DailyGoals
		bmi := st.Profile.BMI()

		dash = Dashboard{
			Day:               today,
			Stats:             d,
			HasStats:          ok,
			RemainingCalories: remainingCalories(st, today),
			Macros:            macroTotals(mealsOn(st.Meals, today)),
			Progress: d.ProgressOf(stats.Goals{
				Steps:    goals.Steps,
				Calories: goals.Calories,
				Workouts: goals.Workouts,
				Water:    goals.Water,
			}),
			Goals:       goals,
			BMI:         profile.RoundBMI(bmi),
			BMICategory: profile.CategoryOf(bmi),
			Weight:      st.Profile.Weight,
			RecentWeights: lo.Filter(weight.SortedByDate(st.Weights), func(e weight.Entry, _ int) bool {
				return !e.Date.Before(since) && !e.Date.After(today)
			}),
		}
	})
	return
}
