package api

import (
	"github.com/burenotti/go_fitness_backend/internal/domain/calendar"
	"github.com/burenotti/go_fitness_backend/internal/domain/meal"
	"github.com/burenotti/go_fitness_backend/internal/domain/stats"
	"github.com/labstack/echo/v4"
	"net/http"
)

func (s *Server) MountDashboard() {
	s.handler.GET("/dashboard", s.GetDashboard)
}

type DashboardResponse struct {
	Date              calendar.Day   `json:"date"`
	Stats             DailyStats     `json:"stats"`
	HasStats          bool           `json:"has_stats"`
	RemainingCalories int            `json:"remaining_calories"`
	Macros            meal.Macros    `json:"macros"`
	Progress          stats.Progress `json:"progress"`
	Goals             DailyGoals     `json:"goals"`
	Weight            float64        `json:"weight"`
	BMI               float64        `json:"bmi"`
	BMICategory       string         `json:"bmi_category"`
	RecentWeights     []WeightEntry  `json:"recent_weights"`
}

func (s *Server) GetDashboard(c echo.Context) error {
	d, err := s.trackerService.Dashboard(c.Request().Context(), s.getTrackerUoW())
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, DashboardResponse{
		Date:              d.Day,
		Stats:             dailyStatsResponse(d.Stats),
		HasStats:          d.HasStats,
		RemainingCalories: d.RemainingCalories,
		Macros:            d.Macros,
		Progress:          d.Progress,
		Goals:             dailyGoals(d.Goals),
		Weight:            d.Weight,
		BMI:               d.BMI,
		BMICategory:       string(d.BMICategory),
		RecentWeights:     weightsResponse(d.RecentWeights),
	})
}
