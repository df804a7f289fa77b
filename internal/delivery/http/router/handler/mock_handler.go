// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"telemock/internal/delivery/mock"
	"telemock/internal/infra/persistence/memory"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MockHandler exposes the mock router over HTTP.
type MockHandler struct {
	router *mock.Router
	store  *memory.Store
	logger *slog.Logger
}

// NewMockHandler is the constructor for MockHandler, injected by Fx.
func NewMockHandler(router *mock.Router, store *memory.Store, logger *slog.Logger) *MockHandler {
	return &MockHandler{
		router: router,
		store:  store,
		logger: logger,
	}
}

// Resolve serves any method under the API prefix. The wildcard is the
// resource path, e.g. "AdminPHP/getUser.php".
func (h *MockHandler) Resolve(c echo.Context) error {
	req, err := mock.NewRequest(c.Param("*"), c.Request())
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := h.router.Resolve(c.Request().Context(), req)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(resp.Status, resp)
}

// Reset reloads the seed, discarding every mutation.
func (h *MockHandler) Reset(c echo.Context) error {
	if err := h.router.Exclusive(h.store.Reset); err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("mock store reset")

	return c.JSON(http.StatusOK, mock.OK(nil).WithMessage("Datos reiniciados"))
}

// Health reports liveness and how many mock routes are registered.
func (h *MockHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, mock.OK(mock.Fields{
		"status": "ok",
		"rutas":  len(h.router.Routes()),
	}))
}
