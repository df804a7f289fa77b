package middleware

import (
	"log/slog"

	deliverycontext "telemock/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware generates or extracts a unique Request ID for each request and creates a request-scoped logger
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the client's X-Request-Id when present, echoes it back and
// stores it with a tagged logger on the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx, requestID := deliverycontext.EnsureRequestID(
			req.Context(),
			req.Header.Get(deliverycontext.HeaderXRequestID),
			m.logger,
		)

		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
