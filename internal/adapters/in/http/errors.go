package http

import (
	"errors"
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps application errors onto HTTP status codes:
// missing objects become 404, violated business rules become 409,
// malformed input becomes 400 and everything else 500.
func respondError(ctx echo.Context, err error) error {
	return ctx.JSON(statusCode(err), Error{
		Code:    statusCode(err),
		Message: err.Error(),
	})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case isConflict(err):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func isConflict(err error) bool {
	return errors.Is(err, errs.ErrInvalidState) ||
		errors.Is(err, errs.ErrConcurrentModification) ||
		errors.Is(err, commands.ErrJobNumberAlreadyTaken) ||
		errors.Is(err, commands.ErrWorkerAlreadyAssigned) ||
		errors.Is(err, commands.ErrJobAlreadyHasLead) ||
		errors.Is(err, commands.ErrQualityGateNotCleared)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
