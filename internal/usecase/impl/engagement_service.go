package impl

import (
	"context"
	"log/slog"
	"strconv"

	"telemock/internal/domain/entity"
	domainerrors "telemock/internal/domain/errors"
	"telemock/internal/infra/persistence/memory"
	"telemock/internal/usecase"

	"github.com/pkg/errors"
)

type engagementService struct {
	store  *memory.Store
	logger *slog.Logger
}

// NewEngagementService creates the gamification and dashboard service.
func NewEngagementService(store *memory.Store, logger *slog.Logger) usecase.EngagementUsecase {
	return &engagementService{
		store:  store,
		logger: logger,
	}
}

func (s *engagementService) Balance(_ context.Context, userID int) (int, error) {
	if _, ok := s.store.Users.Find(userID); !ok {
		return 0, errors.WithStack(domainerrors.ErrUserNotFound.WithDetails(strconv.Itoa(userID)))
	}

	return s.store.Points.Balance(userID), nil
}

func (s *engagementService) Award(ctx context.Context, input usecase.AwardInput) (int, error) {
	if _, ok := s.store.Users.Find(input.UserID); !ok {
		return 0, errors.WithStack(domainerrors.ErrUserNotFound.WithDetails(strconv.Itoa(input.UserID)))
	}

	balance := s.store.Points.Add(input.UserID, input.Points)

	loggerFrom(ctx, s.logger).Info("points awarded",
		slog.Int("user_id", input.UserID),
		slog.Int("points", input.Points),
		slog.String("reason", input.Reason),
	)

	return balance, nil
}

func (s *engagementService) Ranking(_ context.Context) ([]entity.PointsBalance, error) {
	return s.store.Points.Snapshot(), nil
}

func (s *engagementService) Dashboard(_ context.Context) (entity.DashboardMetrics, error) {
	return s.store.Dashboard(), nil
}
