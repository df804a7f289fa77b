package handler

import (
	"context"
	"log/slog"
	"net/http"

	"telemock/internal/delivery/mock"
	"telemock/internal/usecase"

	"github.com/pkg/errors"
)

// AuthHandler serves the auth/ resources.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Group registers the auth routes.
func (h *AuthHandler) Group() *mock.Group {
	g := mock.NewGroup("auth", "auth")
	g.Handle("login.php", h.Login, http.MethodPost)
	g.Handle("register.php", h.Register, http.MethodPost)
	g.Handle("logout.php", h.Logout, http.MethodPost, http.MethodGet)

	return g
}

// Login answers with the profile, never the password.
func (h *AuthHandler) Login(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var input usecase.LoginInput
	if err := mock.Bind(req, &input); err != nil {
		return nil, err
	}

	user, err := h.uc.Login(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"user": user}), nil
}

func (h *AuthHandler) Register(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var input usecase.RegisterInput
	if err := mock.Bind(req, &input); err != nil {
		return nil, err
	}

	user, err := h.uc.Register(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.Created(mock.Fields{"user": user}).WithMessage("Registro exitoso"), nil
}

// Logout has no session to end.
func (h *AuthHandler) Logout(_ context.Context, _ *mock.Request) (*mock.Response, error) {
	return mock.OK(nil).WithMessage("Sesión cerrada"), nil
}
