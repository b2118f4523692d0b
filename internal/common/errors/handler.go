// internal/common/errors/handler.go
package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler turns errors surfaced by handlers into JSON error responses.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// errorResponse is the wire shape of every error body.
type errorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// HandleHTTPError is installed as the echo HTTPErrorHandler. It normalizes
// whatever a handler returned into a StandardError, logs it, and writes the
// mapped status with a JSON body. No error crashes the process.
func (h *ErrorHandler) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, resp := h.classify(err)

	h.logger.Error("request failed", map[string]interface{}{
		"code":    string(resp.Code),
		"message": resp.Message,
		"details": resp.Details,
		"status":  status,
		"path":    c.Path(),
		"method":  c.Request().Method,
	})

	if writeErr := c.JSON(status, resp); writeErr != nil {
		h.logger.Error("failed to write error response", map[string]interface{}{
			"error": writeErr.Error(),
		})
	}
}

func (h *ErrorHandler) classify(err error) (int, errorResponse) {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.HTTPStatus(), errorResponse{
			Code:    stdErr.Code,
			Message: stdErr.Message,
			Details: stdErr.Details,
		}
	}

	// Routing-level errors (404, 405) raised by echo itself.
	if httpErr, ok := err.(*echo.HTTPError); ok {
		code := ErrCodeInternal
		switch httpErr.Code {
		case http.StatusNotFound:
			code = "NOT_FOUND"
		case http.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		}
		return httpErr.Code, errorResponse{
			Code:    code,
			Message: http.StatusText(httpErr.Code),
		}
	}

	return http.StatusInternalServerError, errorResponse{
		Code:    ErrCodeInternal,
		Message: "Unexpected error",
		Details: err.Error(),
	}
}
