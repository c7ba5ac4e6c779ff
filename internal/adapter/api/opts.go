package api

import (
	"github.com/burenotti/go_fitness_backend/internal/adapter/storage"
	"github.com/burenotti/go_fitness_backend/internal/app/tracker"
	"github.com/burenotti/go_fitness_backend/internal/app/unitofwork"
	"log/slog"
	"net"
	"strconv"
)

type Option func(*Server)

func Addr(host string, port int) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort(host, strconv.Itoa(port))
	}
}

func Logger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

func DB(db storage.DB) Option {
	return func(s *Server) {
		s.db = db
	}
}

func TrackerService(service *tracker.Service) Option {
	return func(s *Server) {
		s.trackerService = service
	}
}

func MessageBus(bus unitofwork.MessageBus) Option {
	return func(s *Server) {
		s.msgBus = bus
	}
}
