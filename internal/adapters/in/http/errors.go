package http

import (
	"errors"
	"net/http"

	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error codes carried in ErrorResponse.Code.
const (
	codeNotFound   = "not_found"
	codeValidation = "validation"
	codeConflict   = "conflict"
	codeInternal   = "internal"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// statusOf maps the workflow error taxonomy onto HTTP status codes.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, codeNotFound
	case errs.IsValidation(err):
		return http.StatusBadRequest, codeValidation
	case errors.Is(err, errs.ErrObjectConflict):
		return http.StatusConflict, codeConflict
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

// fail writes err as an ErrorResponse. Internal errors are logged and their
// details are not sent to the client.
func (s *Server) fail(c echo.Context, err error) error {
	status, code := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		return c.JSON(status, ErrorResponse{Code: code, Message: http.StatusText(status)})
	}
	return c.JSON(status, ErrorResponse{Code: code, Message: err.Error(), Field: errs.Field(err)})
}

// badRequest reports malformed input that never reached a command.
func badRequest(c echo.Context, field, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Code: codeValidation, Message: message, Field: field})
}

// HTTPErrorHandler renders errors raised by echo itself (unknown route,
// method not allowed, malformed body) in the same shape as handler errors.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code := http.StatusInternalServerError, codeInternal
	message := http.StatusText(status)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = http.StatusText(status)
		if m, ok := he.Message.(string); ok {
			message = m
		}
		switch status {
		case http.StatusNotFound:
			code = codeNotFound
		case http.StatusBadRequest:
			code = codeValidation
		case http.StatusConflict:
			code = codeConflict
		default:
			if status < http.StatusInternalServerError {
				code = http.StatusText(status)
			}
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, ErrorResponse{Code: code, Message: message})
}
