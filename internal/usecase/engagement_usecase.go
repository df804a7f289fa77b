package usecase

import (
	"context"

	"telemock/internal/domain/entity"
)

// AwardInput credits gamification points.
type AwardInput struct {
	UserID int    `mapstructure:"id_usuario" validate:"required"`
	Points int    `mapstructure:"puntos" validate:"required,gt=0"`
	Reason string `mapstructure:"motivo"`
}

// EngagementUsecase covers gamification points and the admin dashboard.
type EngagementUsecase interface {
	Balance(ctx context.Context, userID int) (int, error)
	Award(ctx context.Context, input AwardInput) (int, error)
	Ranking(ctx context.Context) ([]entity.PointsBalance, error)
	Dashboard(ctx context.Context) (entity.DashboardMetrics, error)
}
