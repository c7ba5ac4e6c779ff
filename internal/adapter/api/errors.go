package api

import (
	"errors"
	"fmt"
	"github.com/burenotti/go_fitness_backend/internal/domain"
	"github.com/labstack/echo/v4"
	"net/http"
)

type JsonErrorModel struct {
	Message string `json:"message"`
}

func JsonError(c echo.Context, status int, content any) error {
	data := &JsonErrorModel{Message: fmt.Sprintf("%v", content)}
	return c.JSON(status, data)
}

// serviceError maps tracker errors to a status code. Unexpected errors are
// logged and hidden from the client.
func (s *Server) serviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return JsonError(c, http.StatusBadRequest, err)
	case errors.Is(err, domain.ErrNotFound):
		return JsonError(c, http.StatusNotFound, err)
	default:
		s.logger.Error("request failed", "path", c.Path(), "error", err)
		return JsonError(c, http.StatusInternalServerError, "internal error")
	}
}
