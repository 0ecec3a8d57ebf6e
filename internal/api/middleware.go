package api

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// BodyLogger logs the request line and body together with the response
// status and body for every request. Echo's body dump middleware buffers
// both streams and forwards the response to the client after the handler
// has finished, so the body stays readable downstream.
func BodyLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		Handler: func(c echo.Context, reqBody, resBody []byte) {
			logger.Info().
				Str("method", c.Request().Method).
				Str("uri", c.Request().RequestURI).
				Int("status", c.Response().Status).
				Str("request_body", string(reqBody)).
				Str("response_body", string(resBody)).
				Msg("request")
		},
	})
}

// ProblemHandler converts any error that escapes a handler into a JSON
// problem response {"detail": <message>}. Panics recovered by the Recover
// middleware arrive here as plain errors.
func ProblemHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := 500
		detail := err.Error()
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			detail = fmt.Sprintf("%v", he.Message)
		}

		if code >= 500 {
			logger.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("unhandled error")
		}

		if err := c.JSON(code, map[string]string{"detail": detail}); err != nil {
			logger.Error().Err(err).Msg("failed to write problem response")
		}
	}
}
