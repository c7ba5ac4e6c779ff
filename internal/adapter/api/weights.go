package api

import (
	"github.com/burenotti/go_fitness_backend/internal/domain/calendar"
	"github.com/burenotti/go_fitness_backend/internal/domain/weight"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"net/http"
	"time"
)

func (s *Server) MountWeights() {
	s.handler.GET("/weights", s.ListWeights)
	s.handler.POST("/weights", s.RecordWeight)
	s.handler.GET("/weights/trend", s.GetWeightTrend)
}

type WeightEntry struct {
	Date       calendar.Day `json:"date"`
	Weight     float64      `json:"weight"`
	RecordedAt time.Time    `json:"recorded_at"`
}

func weightResponse(e weight.Entry) WeightEntry {
	return WeightEntry{
		Date:       e.Date,
		Weight:     e.Weight,
		RecordedAt: e.RecordedAt,
	}
}

func weightsResponse(entries []weight.Entry) []WeightEntry {
	return lo.Map(entries, func(e weight.Entry, _ int) WeightEntry {
		return weightResponse(e)
	})
}

type RecordWeightRequest struct {
	Date   calendar.Day `json:"date"`
	Weight float64      `json:"weight"`
}

func (s *Server) RecordWeight(c echo.Context) error {
	var req RecordWeightRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	e, err := s.trackerService.RecordWeight(c.Request().Context(), s.getTrackerUoW(), weight.Input{
		Date:   req.Date,
		Weight: req.Weight,
	})
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, weightResponse(e))
}

type ListWeightsResponse struct {
	Weights []WeightEntry `json:"weights"`
}

func (s *Server) ListWeights(c echo.Context) error {
	entries, err := s.trackerService.WeightHistory(c.Request().Context(), s.getTrackerUoW())
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, ListWeightsResponse{Weights: weightsResponse(entries)})
}

func (s *Server) GetWeightTrend(c echo.Context) error {
	t, err := s.trackerService.WeightTrend(c.Request().Context(), s.getTrackerUoW())
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}
