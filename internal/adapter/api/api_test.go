package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/burenotti/go_fitness_backend/internal/adapter/storage/memory"
	"github.com/burenotti/go_fitness_backend/internal/app/messagebus"
	"github.com/burenotti/go_fitness_backend/internal/app/tracker"
	"github.com/burenotti/go_fitness_backend/internal/domain/calendar"
	"github.com/burenotti/go_fitness_backend/internal/domain/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := messagebus.New(logger)
	t.Cleanup(bus.Close)

	db := memory.New(profile.Profile{
		UserID: "user-1",
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
	})
	seq := 0
	svc := tracker.New(logger,
		tracker.WithClock(func() time.Time { return now }),
		tracker.WithLocation(time.UTC),
		tracker.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)

	return NewServer(
		Logger(logger),
		DB(db),
		TrackerService(svc),
		MessageBus(bus),
	)
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestTodayStats_NotFound(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/stats/today", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, decode[JsonErrorModel](t, rec).Message)
}

func TestRecordMeal(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/meals", `{
		"date": "2024-06-10",
		"name": "Oatmeal",
		"calories": 350,
		"protein": 15,
		"carbs": 60,
		"fat": 5,
		"meal_type": "breakfast"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	m := decode[Meal](t, rec)
	assert.Equal(t, "id-1", m.MealID)
	assert.Equal(t, calendar.Date(2024, 6, 10), m.Date)

	rec = do(t, s, http.MethodGet, "/stats/today", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 350, decode[DailyStats](t, rec).CaloriesConsumed)

	rec = do(t, s, http.MethodGet, "/meals", "")
	require.Equal(t, http.StatusOK, rec.Code)
	log := decode[ListMealsResponse](t, rec)
	assert.Len(t, log.Meals, 1)
	assert.Len(t, log.BySlot["breakfast"], 1)
	assert.Empty(t, log.BySlot["dinner"])
	assert.Equal(t, 350, log.Calories)

	rec = do(t, s, http.MethodGet, "/macros/2024-06-10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	macros := decode[MacroTotalsResponse](t, rec)
	assert.Equal(t, 15.0, macros.Grams.Protein)
	assert.Equal(t, 45.0, macros.Kcal.Fat)
	assert.Equal(t, 80.0, macros.TotalGrams)
}

func TestRecordMeal_Invalid(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/meals", `{"date": "2024-06-10", "name": "x", "calories": -1, "meal_type": "lunch"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/meals", `{"date": "10/06/2024", "name": "x", "meal_type": "lunch"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/meals", `{"date": "2024-06-10", "name": "  ", "meal_type": "lunch"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodGet, "/meals", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[ListMealsResponse](t, rec).Meals)
}

func TestUpdateDailyStats(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPatch, "/stats/2024-06-10", `{"calories_consumed": 1550, "calories_burned": 300}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, s, http.MethodPatch, "/stats/2024-06-10", `{"steps": 8500}`)
	require.Equal(t, http.StatusOK, rec.Code)
	d := decode[DailyStats](t, rec)
	assert.Equal(t, 1550, d.CaloriesConsumed)
	assert.Equal(t, 8500, d.Steps)

	rec = do(t, s, http.MethodGet, "/calories/remaining", "")
	require.Equal(t, http.StatusOK, rec.Code)
	remaining := decode[RemainingCaloriesResponse](t, rec)
	assert.Equal(t, 2000, remaining.Goal)
	assert.Equal(t, 750, remaining.Remaining)

	rec = do(t, s, http.MethodPatch, "/stats/2024-06-10", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodGet, "/stats?from=0001-01-01&to=9999-12-31", "")
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[ListDailyStatsResponse](t, rec)
	require.Len(t, all.Stats, 1)
	assert.Equal(t, calendar.Date(2024, 6, 10), all.Stats[0].Date)

	rec = do(t, s, http.MethodPatch, "/stats/2024-06-10", `{"steps": -3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPatch, "/stats/yesterday", `{"steps": 3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeights(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{
		`{"date": "2024-06-04", "weight": 82.5}`,
		`{"date": "2024-06-10", "weight": 81}`,
		`{"date": "2024-06-10", "weight": 80.8}`,
	} {
		rec := do(t, s, http.MethodPost, "/weights", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := do(t, s, http.MethodGet, "/weights", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[ListWeightsResponse](t, rec).Weights, 2)

	rec = do(t, s, http.MethodGet, "/profile", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 80.8, decode[ProfileResponse](t, rec).Weight)
}

func TestDashboard(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/workouts", `{"date": "2024-06-10", "type": "Running", "duration": 30, "calories_burned": 300}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, s, http.MethodGet, "/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	dash := decode[DashboardResponse](t, rec)
	assert.True(t, dash.HasStats)
	assert.Equal(t, calendar.Date(2024, 6, 10), dash.Date)
	assert.Equal(t, 2300, dash.RemainingCalories)
	assert.Equal(t, 1, dash.Stats.WorkoutsCompleted)
	assert.Equal(t, "Normal weight", dash.BMICategory)
}
