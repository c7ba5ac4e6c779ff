package main

import (
	"context"
	"errors"
	"flag"
	"github.com/burenotti/go_fitness_backend/internal/adapter/api"
	"github.com/burenotti/go_fitness_backend/internal/adapter/storage/memory"
	"github.com/burenotti/go_fitness_backend/internal/app/messagebus"
	"github.com/burenotti/go_fitness_backend/internal/app/tracker"
	"github.com/burenotti/go_fitness_backend/internal/app/unitofwork"
	"github.com/burenotti/go_fitness_backend/internal/config"
	"github.com/burenotti/go_fitness_backend/internal/domain/meal"
	"github.com/burenotti/go_fitness_backend/internal/domain/profile"
	"github.com/burenotti/go_fitness_backend/internal/domain/weight"
	"github.com/burenotti/go_fitness_backend/internal/domain/workout"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger := initLogger(cfg)

	loc, err := cfg.Location()
	if err != nil {
		panic(err)
	}

	bus := messagebus.New(logger)
	defer bus.Close()
	registerEventLogging(bus, logger)

	db := memory.New(cfg.Tracker.Profile.Domain())
	service := tracker.New(logger, tracker.WithLocation(loc))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Tracker.Seed {
		uow := unitofwork.New[*tracker.AtomicContext](db, tracker.NewAtomicContext, bus, logger)
		if err := service.Seed(ctx, uow, service.SampleFixtures()); err != nil {
			panic("failed to seed tracker: " + err.Error())
		}
	}

	server := api.NewServer(
		api.Addr(cfg.Server.Host, cfg.Server.Port),
		api.Logger(logger),
		api.DB(db),
		api.TrackerService(service),
		api.MessageBus(bus),
	)

	errCh := make(chan error)

	go func() {
		defer close(errCh)
		logger.Info("server started", "host", cfg.Server.Host, "port", cfg.Server.Port)
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server was not shutdown gracefully", "error", err)
		}
	case err := <-errCh:
		if err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server closed with unexpected error", "error", err)
			}
		}
	}
	logger.Info("server shutdown")
}

func registerEventLogging(bus *messagebus.MessageBus, logger *slog.Logger) {
	bus.Register(workout.EventRecorded, messagebus.Handle(func(e workout.RecordedEvent) error {
		logger.Info("workout recorded",
			"workout_id", e.WorkoutID,
			"date", e.Date.String(),
			"type", e.Activity,
			"duration", e.Duration,
			"calories_burned", e.CaloriesBurned,
		)
		return nil
	}))
	bus.Register(meal.EventRecorded, messagebus.Handle(func(e meal.RecordedEvent) error {
		logger.Info("meal recorded",
			"meal_id", e.MealID,
			"date", e.Date.String(),
			"meal_type", e.MealType,
			"calories", e.Calories,
		)
		return nil
	}))
	bus.Register(weight.EventRecorded, messagebus.Handle(func(e weight.RecordedEvent) error {
		logger.Info("weight recorded", "date", e.Date.String(), "weight", e.Weight)
		return nil
	}))
	bus.Register(profile.EventUpdated, messagebus.Handle(func(e profile.UpdatedEvent) error {
		logger.Info("profile updated", "user_id", e.UserID, "changed", e.Changed)
		return nil
	}))
	bus.Register(profile.EventWeightChanged, messagebus.Handle(func(e profile.WeightChangedEvent) error {
		logger.Info("profile weight changed", "user_id", e.UserID, "from", e.From, "to", e.To)
		return nil
	}))
}

func initLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	switch cfg.App.Env {
	case config.Development:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		})
	case config.Production:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: false,
			Level:     slog.LevelInfo,
		})
	default:
		panic("invalid env")
	}

	return slog.New(handler)
}
