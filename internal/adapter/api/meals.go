package api

import (
	"github.com/burenotti/go_fitness_backend/internal/domain/calendar"
	"github.com/burenotti/go_fitness_backend/internal/domain/meal"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"net/http"
	"time"
)

func (s *Server) MountMeals() {
	s.handler.GET("/meals", s.ListMeals)
	s.handler.POST("/meals", s.RecordMeal)
	s.handler.GET("/macros/:date", s.GetMacroTotals)
}

type Meal struct {
	MealID    string       `json:"meal_id"`
	Date      calendar.Day `json:"date"`
	Name      string       `json:"name"`
	Calories  int          `json:"calories"`
	Protein   float64      `json:"protein"`
	Carbs     float64      `json:"carbs"`
	Fat       float64      `json:"fat"`
	MealType  string       `json:"meal_type"`
	CreatedAt time.Time    `json:"created_at"`
}

func mealResponse(m meal.Meal) Meal {
	return Meal{
		MealID:    m.MealID,
		Date:      m.Date,
		Name:      m.Name,
		Calories:  m.Calories,
		Protein:   m.Protein,
		Carbs:     m.Carbs,
		Fat:       m.Fat,
		MealType:  string(m.MealType),
		CreatedAt: m.CreatedAt,
	}
}

func mealsResponse(meals []meal.Meal) []Meal {
	return lo.Map(meals, func(m meal.Meal, _ int) Meal {
		return mealResponse(m)
	})
}

type RecordMealRequest struct {
	Date     calendar.Day `json:"date"`
	Name     string       `json:"name"`
	Calories int          `json:"calories"`
	Protein  float64      `json:"protein"`
	Carbs    float64      `json:"carbs"`
	Fat      float64      `json:"fat"`
	MealType string       `json:"meal_type"`
}

func (s *Server) RecordMeal(c echo.Context) error {
	var req RecordMealRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	m, err := s.trackerService.RecordMeal(c.Request().Context(), s.getTrackerUoW(), meal.Input{
		Date:     req.Date,
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		MealType: meal.Slot(req.MealType),
	})
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, mealResponse(m))
}

type ListMealsRequest struct {
	Date calendar.Day `query:"date"`
}

type ListMealsResponse struct {
	Date     calendar.Day      `json:"date"`
	Meals    []Meal            `json:"meals"`
	BySlot   map[string][]Meal `json:"by_slot"`
	Macros   meal.Macros       `json:"macros"`
	Calories int               `json:"calories"`
}

// ListMeals returns the meals of ?date=, today when omitted.
func (s *Server) ListMeals(c echo.Context) error {
	var req ListMealsRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}
	if req.Date.IsZero() {
		req.Date = s.trackerService.Today()
	}

	log, err := s.trackerService.Meals(c.Request().Context(), s.getTrackerUoW(), req.Date)
	if err != nil {
		return s.serviceError(c, err)
	}

	bySlot := make(map[string][]Meal, len(log.BySlot))
	for slot, meals := range log.BySlot {
		bySlot[string(slot)] = mealsResponse(meals)
	}

	return c.JSON(http.StatusOK, ListMealsResponse{
		Date:     log.Day,
		Meals:    mealsResponse(log.Meals),
		BySlot:   bySlot,
		Macros:   log.Macros,
		Calories: log.Calories,
	})
}

type GetMacroTotalsRequest struct {
	Date calendar.Day `param:"date" validate:"required"`
}

type MacroTotalsResponse struct {
	Date       calendar.Day `json:"date"`
	Grams      meal.Macros  `json:"grams"`
	Kcal       meal.Macros  `json:"kcal"`
	TotalGrams float64      `json:"total_grams"`
}

func (s *Server) GetMacroTotals(c echo.Context) error {
	var req GetMacroTotalsRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	totals, err := s.trackerService.MacroTotals(c.Request().Context(), s.getTrackerUoW(), req.Date)
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, MacroTotalsResponse{
		Date:       req.Date,
		Grams:      totals,
		Kcal:       totals.Kcal(),
		TotalGrams: totals.Grams(),
	})
}
