package http

import (
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewEcho builds the echo instance serving health, metrics, the OpenAPI
// document and the /api/v1 routes of server.
func NewEcho(server *Server, doc *openapi3.T, metrics http.Handler, logger *slog.Logger) (*echo.Echo, error) {
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = HTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, StaffIDHeader},
	}))
	e.Use(RequestLogger(logger.With("component", "http")))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics))

	api := e.Group("/api/v1")
	api.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, openAPIDocument)
	})
	api.Use(CallerIdentity(), validator)
	server.Register(api)

	return e, nil
}
