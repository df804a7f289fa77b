package main

import (
	"context"
	"log/slog"
	"os"

	"telemock/config"
	"telemock/internal/delivery"
	"telemock/internal/delivery/http"
	"telemock/internal/delivery/http/router/handler"
	"telemock/internal/delivery/mock"
	mockhandler "telemock/internal/delivery/mock/handler"
	"telemock/internal/infra/auth"
	logs "telemock/internal/infra/log"
	"telemock/internal/infra/persistence/memory"
	"telemock/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		injectMock(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			installInterceptor,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		auth.NewPasswordHasher,
		memory.New,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAccountService,
			impl.NewCatalogService,
			impl.NewAppointmentService,
			impl.NewClinicalService,
			impl.NewCommerceService,
			impl.NewBlogService,
			impl.NewEngagementService,
			impl.NewChatService,
		),
	)
}

func injectMock() fx.Option {
	return fx.Options(
		fx.Provide(
			mockhandler.NewAuthHandler,
			mockhandler.NewAdminHandler,
			mockhandler.NewUserHandler,
			mockhandler.NewMedicHandler,
			mockhandler.NewChatHandler,
			mockhandler.NewRouter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMockHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// installInterceptor diverts in-process calls to the configured base URL.
func installInterceptor(cfg *config.Config, router *mock.Router, logger *slog.Logger) {
	if cfg.Mock.InterceptBaseURL == "" {
		return
	}

	if mock.InstallDefault(mock.NewTransport(cfg.Mock.InterceptBaseURL, router, nil)) {
		logger.Info("Mock interceptor installed", slog.String("prefix", cfg.Mock.InterceptBaseURL))
	}
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
