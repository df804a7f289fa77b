// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"telemock/config"
	"telemock/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config      *config.Config
	MockHandler *handler.MockHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg         *config.Config
	mockHandler *handler.MockHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:         params.Config,
		mockHandler: params.MockHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.mockHandler.Health)

	if r.cfg.Mock.ResetEnabled {
		e.POST("/__mock/reset", r.mockHandler.Reset)
	}

	methods := []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	e.Match(methods, r.cfg.Mock.APIPrefix+"/*", r.mockHandler.Resolve)
}
