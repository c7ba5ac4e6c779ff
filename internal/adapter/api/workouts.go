package api

import (
	"github.com/burenotti/go_fitness_backend/internal/domain/calendar"
	"github.com/burenotti/go_fitness_backend/internal/domain/workout"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"net/http"
	"time"
)

func (s *Server) MountWorkouts() {
	s.handler.GET("/workouts", s.ListWorkouts)
	s.handler.POST("/workouts", s.RecordWorkout)
	s.handler.GET("/workouts/types", s.ListWorkoutTypes)
}

type Workout struct {
	WorkoutID      string       `json:"workout_id"`
	Date           calendar.Day `json:"date"`
	Type           string       `json:"type"`
	Duration       int          `json:"duration"`
	CaloriesBurned int          `json:"calories_burned"`
	Notes          string       `json:"notes,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

func workoutResponse(w workout.Workout) Workout {
	return Workout{
		WorkoutID:      w.WorkoutID,
		Date:           w.Date,
		Type:           w.Type,
		Duration:       w.Duration,
		CaloriesBurned: w.CaloriesBurned,
		Notes:          w.Notes,
		CreatedAt:      w.CreatedAt,
	}
}

type RecordWorkoutRequest struct {
	Date           calendar.Day `json:"date"`
	Type           string       `json:"type"`
	Duration       int          `json:"duration"`
	CaloriesBurned int          `json:"calories_burned"`
	Notes          string       `json:"notes,omitempty"`
}

func (s *Server) RecordWorkout(c echo.Context) error {
	var req RecordWorkoutRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	w, err := s.trackerService.RecordWorkout(c.Request().Context(), s.getTrackerUoW(), workout.Input{
		Date:           req.Date,
		Type:           req.Type,
		Duration:       req.Duration,
		CaloriesBurned: req.CaloriesBurned,
		Notes:          req.Notes,
	})
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, workoutResponse(w))
}

type ListWorkoutsResponse struct {
	Workouts []Workout `json:"workouts"`
}

func (s *Server) ListWorkouts(c echo.Context) error {
	ws, err := s.trackerService.Workouts(c.Request().Context(), s.getTrackerUoW())
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, ListWorkoutsResponse{
		Workouts: lo.Map(ws, func(w workout.Workout, _ int) Workout {
			return workoutResponse(w)
		}),
	})
}

type ListWorkoutTypesResponse struct {
	Types []string `json:"types"`
}

func (s *Server) ListWorkoutTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, ListWorkoutTypesResponse{Types: workout.SuggestedTypes})
}
