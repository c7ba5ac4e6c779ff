package api

import (
	"context"
	"errors"
	"fmt"
	"github.com/burenotti/go_fitness_backend/internal/adapter/storage"
	"github.com/burenotti/go_fitness_backend/internal/app/tracker"
	"github.com/burenotti/go_fitness_backend/internal/app/unitofwork"
	"github.com/burenotti/go_fitness_backend/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"log/slog"
	"time"
)

const (
	serverTimeout     = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	maxHeaderBytes    = 4096
)

type Server struct {
	handler        *echo.Echo
	logger         *slog.Logger
	addr           string
	db             storage.DB
	trackerService *tracker.Service
	msgBus         unitofwork.MessageBus
	validator      *validator.Validate
}

func NewServer(opt ...Option) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.WriteTimeout = serverTimeout
	e.Server.ReadTimeout = serverTimeout
	e.Server.IdleTimeout = serverTimeout
	e.Server.ReadHeaderTimeout = readHeaderTimeout
	e.Server.MaxHeaderBytes = maxHeaderBytes

	s := &Server{
		handler:   e,
		logger:    slog.Default(),
		validator: domain.NewValidator(),
	}

	for _, opt := range opt {
		opt(s)
	}

	e.Use(middleware.RequestID())
	e.Use(slogecho.NewWithConfig(s.logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelInfo,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	}))
	e.Use(middleware.Recover())
	s.Mount()
	return s
}

func (s *Server) Mount() {
	s.MountProfile()
	s.MountWorkouts()
	s.MountMeals()
	s.MountWeights()
	s.MountStats()
	s.MountDashboard()
}

func (s *Server) Start() error {
	return s.handler.Start(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.handler.Shutdown(ctx)
}

func (s *Server) getTrackerUoW() *tracker.UoW {
	return unitofwork.New[*tracker.AtomicContext](
		s.db,
		tracker.NewAtomicContext,
		s.msgBus,
		s.logger,
	)
}

func (s *Server) bind(ctx echo.Context, i interface{}) error {
	if err := ctx.Bind(i); err != nil {
		return fmt.Errorf("bad request")
	}
	if err := s.validator.Struct(i); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return fmt.Errorf("bad request")
		}
		return fmt.Errorf("%s: %s", errs[0].Field(), errs[0].Error())

	}
	return nil
}
