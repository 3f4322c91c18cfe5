package handlers

import (
	"log/slog"
	"net/http"

	"finance-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (client and query errors,
// status taken from the code) or SendSystemError (anything internal, always
// SYSTEM_001 without the cause). Errors returned from a handler reach the
// echo error handler instead.

const TraceIDContextKey = "trace_id"

// SuccessResponse is the envelope of successful responses.
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// SendError sends the response for code with the request's trace ID.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError hides err behind SYSTEM_001. The cause is logged with the
// trace ID so it can be found from the client report.
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, cause := errors.WrapSystemError(err, traceID)
	if cause != nil {
		slog.ErrorContext(c.Request().Context(), "Request failed", "trace_id", traceID, "error", cause.Error())
	}
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
