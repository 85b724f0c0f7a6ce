package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/domain/model/operation"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError renders a use case error. Unclassified errors become a 500
// without detail and are left for echo's error handler to log.
func writeError(c echo.Context, err error) error {
	var invalid *operation.InvalidTransitionError
	if errors.As(err, &invalid) {
		from := servers.OperationStatus(invalid.From.String())
		to := servers.OperationStatus(invalid.To.String())
		return c.JSON(http.StatusBadRequest, servers.TransitionError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			From:    &from,
			To:      &to,
		})
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error").SetInternal(err)
	}

	return c.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrPersistenceConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, operation.ErrInvalidTransition):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
