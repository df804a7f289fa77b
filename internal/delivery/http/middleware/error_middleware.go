package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"telemock/internal/delivery/mock"
	domainerrors "telemock/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders errors escaping echo handlers in the mock envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.write(c, mock.Fail(err))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		m.write(c, &mock.Response{Status: httpErr.Code, Message: message})

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", fmt.Sprintf("%+v", err)),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, mock.Fail(err))
}

func (m *ErrorMiddleware) write(c echo.Context, resp *mock.Response) {
	if err := c.JSON(resp.Status, resp); err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
