package storage

import (
	"context"
	"errors"
	"fmt"
	"github.com/burenotti/go_fitness_backend/internal/domain/calendar"
	"github.com/burenotti/go_fitness_backend/internal/domain/meal"
	"github.com/burenotti/go_fitness_backend/internal/domain/profile"
	"github.com/burenotti/go_fitness_backend/internal/domain/stats"
	"github.com/burenotti/go_fitness_backend/internal/domain/weight"
	"github.com/burenotti/go_fitness_backend/internal/domain/workout"
	"maps"
	"slices"
)

var (
	ErrInternal = errors.New("internal storage error")
	ErrTxDone   = errors.New("transaction has already been committed or rolled back")
)

// State is everything tracked for the user.
type State struct {
	Profile  profile.Profile
	Workouts []workout.Workout
	Meals    []meal.Meal
	Weights  []weight.Entry
	Stats    map[calendar.Day]stats.Daily
}

func NewState(p profile.Profile) *State {
	return &State{
		Profile: p,
		Stats:   make(map[calendar.Day]stats.Daily),
	}
}

// Clone returns a copy that shares no mutable memory with s.
func (s *State) Clone() *State {
	c := &State{
		Profile:  s.Profile,
		Workouts: slices.Clone(s.Workouts),
		Meals:    slices.Clone(s.Meals),
		Weights:  slices.Clone(s.Weights),
		Stats:    maps.Clone(s.Stats),
	}
	if c.Stats == nil {
		c.Stats = make(map[calendar.Day]stats.Daily)
	}
	return c
}

type Tx interface {
	// State is the working copy. Changes become visible to other
	// transactions only after Commit.
	State() *State
	Commit() error
	Rollback() error
}

type DB interface {
	Begin(ctx context.Context) (Tx, error)
}

func InternalError(err error) error {
	return errors.Join(fmt.Errorf("internal storage error: %w", err), ErrInternal)
}
