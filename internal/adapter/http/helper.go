package http

import (
	"errors"
	"net/http"

	"loan-backoffice/internal/domain/application"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// domainError maps engine errors to HTTP responses. Every failure carries
// exactly one of the engine's error kinds; anything else is a server error.
func domainError(c echo.Context, err error) error {
	var incomplete *application.IncompleteDocumentsError
	var invalid *application.ValidationError
	switch {
	case errors.As(err, &incomplete):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":             "missing required documents",
			"missing_documents": incomplete.Missing,
		})
	case errors.As(err, &invalid):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalid.Error()})
	case errors.Is(err, application.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	case errors.Is(err, application.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, application.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "a restoration request is already pending for this application"})
	case errors.Is(err, application.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "operation not permitted in the current state"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "server error"})
	}
}
