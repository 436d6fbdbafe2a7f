package http

import (
	"log/slog"
	"net/http"
	"strings"

	"atelier/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// StaffIDHeader identifies the staff member on whose behalf a request runs.
const StaffIDHeader = "X-Staff-ID"

const callerKey = "atelier.caller"

// CallerIdentity resolves the X-Staff-ID header. Mutating requests must
// carry a valid id; safe methods may omit it.
func CallerIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(StaffIDHeader))
			if raw == "" {
				if isSafe(c.Request().Method) {
					return next(c)
				}
				return badRequest(c, StaffIDHeader, StaffIDHeader+" header is required")
			}

			id, err := kernel.UUIDFromString(raw)
			if err != nil {
				return badRequest(c, StaffIDHeader, err.Error())
			}
			c.Set(callerKey, id)
			return next(c)
		}
	}
}

// callerID returns the id set by CallerIdentity.
func callerID(c echo.Context) (kernel.UUID, bool) {
	id, ok := c.Get(callerKey).(kernel.UUID)
	return id, ok
}

func isSafe(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// RequestLogger logs one line per request through logger.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if id, ok := callerID(c); ok {
				attrs = append(attrs, slog.String("staff_id", id.String()))
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
