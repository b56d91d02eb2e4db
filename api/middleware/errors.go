package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/asphaltlabs/asphalt-companion/internal/apperrors"
)

// ErrorHandler maps AppErrors onto their HTTP status. Anything else falls
// through to echo's default handler, which keeps storage failures opaque.
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if !c.Response().Committed {
				if jsonErr := c.JSON(appErr.Code, echo.Map{"error": appErr.Message}); jsonErr != nil {
					e.Logger.Error(jsonErr)
				}
			}
			return
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
