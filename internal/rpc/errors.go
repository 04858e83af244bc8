package rpc

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/services"
)

// Status codes carried in error bodies
const (
	CodeNotFound        = "not_found"
	CodeInvalidArgument = "invalid_argument"
	CodeInternal        = "internal"
	CodeUnavailable     = "unavailable"
)

// Status is the body of every failed call
type Status struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusFor classifies err. Only validation and missing entities are
// reported as such; everything else is an internal failure.
func statusFor(err error) (int, Status) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound, Status{Code: CodeNotFound, Message: err.Error()}
	case errors.Is(err, services.ErrInvalidArgument):
		return http.StatusBadRequest, Status{Code: CodeInvalidArgument, Message: err.Error()}
	default:
		return http.StatusInternalServerError, Status{Code: CodeInternal, Message: "internal error"}
	}
}

func (s *Server) writeError(c *gin.Context, err error) {
	code, status := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request.Context(), "rpc failed",
			"method", c.FullPath(),
			"error", err)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(code, status)
}

// badRequest marks a decoding problem as a validation error
func badRequest(format string, args ...any) error {
	return services.Invalid(fmt.Sprintf(format, args...))
}
