package web

import (
	"errors"
	"github.com/labstack/echo/v4"
	"log/slog"
	"net/http"
)

// ErrorLogAndMaskMiddleware logs unexpected errors and masks them as plain
// 500s. Errors already carrying an HTTP status pass through untouched.
func ErrorLogAndMaskMiddleware(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				if httpErr.Internal != nil {
					logger.Error(
						"request failed",
						slog.String("path", c.Request().URL.Path),
						slog.String("err", httpErr.Internal.Error()),
					)
				}

				return httpErr
			}

			logger.Error(
				"request failed",
				slog.String("path", c.Request().URL.Path),
				slog.String("err", err.Error()),
			)

			return echo.NewHTTPError(http.StatusInternalServerError)
		}
	}
}

func NoCacheOnErrorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				noCache(c)
			}

			return err
		}
	}
}

func noCache(c echo.Context) {
	res := c.Response()
	res.Header().Del("Expires")
	res.Header().Set(echo.HeaderCacheControl, "private, no-cache, no-store, max-age=0, must-revalidate")
}
