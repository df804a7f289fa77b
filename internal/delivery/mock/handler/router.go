package handler

import (
	"log/slog"

	"telemock/config"
	"telemock/internal/delivery/mock"

	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Auth   *AuthHandler
	Admin  *AdminHandler
	User   *UserHandler
	Medic  *MedicHandler
	Chat   *ChatHandler
}

// NewRouter assembles the mock router. Groups are tried in this order.
func NewRouter(params RouterParams) *mock.Router {
	return mock.NewRouter(
		params.Logger,
		params.Config.Mock.Latency,
		params.Auth.Group(),
		params.Admin.Group(),
		params.User.Group(),
		params.Medic.Group(),
		params.Chat.Group(),
	)
}
