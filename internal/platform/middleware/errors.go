package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medilive/medilive/internal/platform/apperr"
)

// ErrorHandler returns a custom echo HTTP error handler that renders every
// failure as {"error": message}. Known error kinds keep their message and
// mapped status; anything unrecognized becomes a generic 500 whose detail
// goes to the log only.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := apperr.Status(err)
		message := apperr.Message(err)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			}
		}

		if status == http.StatusInternalServerError {
			rid, _ := c.Get("request_id").(string)
			logger.Error().
				Err(err).
				Str("request_id", rid).
				Str("path", c.Request().URL.Path).
				Msg("internal failure")
			message = "internal server error"
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, map[string]string{"error": message})
	}
}
