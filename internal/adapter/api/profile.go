package api

import (
	"github.com/burenotti/go_fitness_backend/internal/domain/profile"
	"github.com/labstack/echo/v4"
	"net/http"
)

func (s *Server) MountProfile() {
	s.handler.GET("/profile", s.GetProfile)
	s.handler.PUT("/profile", s.UpdateProfile)
}

type DailyGoals struct {
	Steps    int `json:"steps"`
	Calories int `json:"calories"`
	Workouts int `json:"workouts"`
	Water    int `json:"water"`
}

type ProfileResponse struct {
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	Age         int        `json:"age"`
	Gender      string     `json:"gender"`
	Weight      float64    `json:"weight"`
	Height      float64    `json:"height"`
	Goal        string     `json:"goal"`
	DailyGoals  DailyGoals `json:"daily_goals"`
	BMI         float64    `json:"bmi"`
	BMICategory string     `json:"bmi_category"`
}

func profileResponse(p profile.Profile) ProfileResponse {
	bmi := p.BMI()
	return ProfileResponse{
		UserID:      p.UserID,
		Name:        p.Name,
		Age:         p.Age,
		Gender:      string(p.Gender),
		Weight:      p.Weight,
		Height:      p.Height,
		Goal:        string(p.Goal),
		DailyGoals:  dailyGoals(p.DailyGoals),
		BMI:         profile.RoundBMI(bmi),
		BMICategory: string(profile.CategoryOf(bmi)),
	}
}

func dailyGoals(g profile.DailyGoals) DailyGoals {
	return DailyGoals{
		Steps:    g.Steps,
		Calories: g.Calories,
		Workouts: g.Workouts,
		Water:    g.Water,
	}
}

func (s *Server) GetProfile(c echo.Context) error {
	p, err := s.trackerService.Profile(c.Request().Context(), s.getTrackerUoW())
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, profileResponse(p))
}

type UpdateProfileRequest struct {
	Name       string     `json:"name"`
	Age        int        `json:"age"`
	Gender     string     `json:"gender"`
	Weight     float64    `json:"weight"`
	Height     float64    `json:"height"`
	Goal       string     `json:"goal"`
	DailyGoals DailyGoals `json:"daily_goals"`
}

func (s *Server) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	p, err := s.trackerService.UpdateProfile(c.Request().Context(), s.getTrackerUoW(), profile.Profile{
		Name:   req.Name,
		Age:    req.Age,
		Gender: profile.Gender(req.Gender),
		Weight: req.Weight,
		Height: req.Height,
		Goal:   profile.Goal(req.Goal),
		DailyGoals: profile.DailyGoals{
			Steps:    req.DailyGoals.Steps,
			Calories: req.DailyGoals.Calories,
			Workouts: req.DailyGoals.Workouts,
			Water:    req.DailyGoals.Water,
		},
	})
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, profileResponse(p))
}
