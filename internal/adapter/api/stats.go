package api

import (
	"github.com/burenotti/go_fitness_backend/internal/domain/calendar"
	"github.com/burenotti/go_fitness_backend/internal/domain/stats"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"net/http"
)

// defaultRangeDays is the length of the stats window when ?from= is omitted.
const defaultRangeDays = 7

func (s *Server) MountStats() {
	s.handler.GET("/stats", s.ListDailyStats)
	s.handler.GET("/stats/today", s.GetTodayStats)
	s.handler.PATCH("/stats/:date", s.UpdateDailyStats)
	s.handler.GET("/calories/remaining", s.GetRemainingCalories)
}

type DailyStats struct {
	Date              calendar.Day `json:"date"`
	CaloriesConsumed  int          `json:"calories_consumed"`
	CaloriesBurned    int          `json:"calories_burned"`
	Steps             int          `json:"steps"`
	ActiveMinutes     int          `json:"active_minutes"`
	WorkoutsCompleted int          `json:"workouts_completed"`
	WaterIntake       int          `json:"water_intake"`
}

func dailyStatsResponse(d stats.Daily) DailyStats {
	return DailyStats{
		Date:              d.Day,
		CaloriesConsumed:  d.CaloriesConsumed,
		CaloriesBurned:    d.CaloriesBurned,
		Steps:             d.Steps,
		ActiveMinutes:     d.ActiveMinutes,
		WorkoutsCompleted: d.WorkoutsCompleted,
		WaterIntake:       d.WaterIntake,
	}
}

type ListDailyStatsRequest struct {
	From calendar.Day `query:"from"`
	To   calendar.Day `query:"to"`
}

type ListDailyStatsResponse struct {
	From  calendar.Day `json:"from"`
	To    calendar.Day `json:"to"`
	Stats []DailyStats `json:"stats"`
}

// ListDailyStats defaults to the week ending today.
func (s *Server) ListDailyStats(c echo.Context) error {
	var req ListDailyStatsRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}
	if req.To.IsZero() {
		req.To = s.trackerService.Today()
	}
	if req.From.IsZero() {
		req.From = req.To.AddDays(-(defaultRangeDays - 1))
	}

	days, err := s.trackerService.DailyStats(c.Request().Context(), s.getTrackerUoW(), req.From, req.To)
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, ListDailyStatsResponse{
		From: req.From,
		To:   req.To,
		Stats: lo.Map(days, func(d stats.Daily, _ int) DailyStats {
			return dailyStatsResponse(d)
		}),
	})
}

func (s *Server) GetTodayStats(c echo.Context) error {
	d, err := s.trackerService.TodayStats(c.Request().Context(), s.getTrackerUoW())
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, dailyStatsResponse(d))
}

type UpdateDailyStatsRequest struct {
	Date              calendar.Day `param:"date" json:"-" validate:"required"`
	CaloriesConsumed  *int         `json:"calories_consumed"`
	CaloriesBurned    *int         `json:"calories_burned"`
	Steps             *int         `json:"steps"`
	ActiveMinutes     *int         `json:"active_minutes"`
	WorkoutsCompleted *int         `json:"workouts_completed"`
	WaterIntake       *int         `json:"water_intake"`
}

// UpdateDailyStats overwrites only the counters present in the body.
func (s *Server) UpdateDailyStats(c echo.Context) error {
	var req UpdateDailyStatsRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	u := stats.Update{
		CaloriesConsumed:  req.CaloriesConsumed,
		CaloriesBurned:    req.CaloriesBurned,
		Steps:             req.Steps,
		ActiveMinutes:     req.ActiveMinutes,
		WorkoutsCompleted: req.WorkoutsCompleted,
		WaterIntake:       req.WaterIntake,
	}
	if u.IsEmpty() {
		return JsonError(c, http.StatusBadRequest, "no stats to update")
	}

	d, err := s.trackerService.UpsertDailyStats(c.Request().Context(), s.getTrackerUoW(), req.Date, u)
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, dailyStatsResponse(d))
}

type RemainingCaloriesResponse struct {
	Date      calendar.Day `json:"date"`
	Goal      int          `json:"goal"`
	Remaining int          `json:"remaining"`
}

func (s *Server) GetRemainingCalories(c echo.Context) error {
	b, err := s.trackerService.CalorieBudget(c.Request().Context(), s.getTrackerUoW())
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, RemainingCaloriesResponse{
		Date:      b.Day,
		Goal:      b.Goal,
		Remaining: b.Remaining,
	})
}
