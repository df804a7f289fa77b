package impl

import (
	"context"
	"testing"

	"telemock/internal/domain/entity"
	domainerrors "telemock/internal/domain/errors"
	"telemock/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementService_Points(t *testing.T) {
	svc := NewEngagementService(newTestStore(t), discardLogger())
	ctx := context.Background()

	balance, err := svc.Balance(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 120, balance)

	balance, err = svc.Balance(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, balance)

	balance, err = svc.Award(ctx, usecase.AwardInput{UserID: 4, Points: 100, Reason: "cita completada"})
	require.NoError(t, err)
	assert.Equal(t, 140, balance)

	ranking, err := svc.Ranking(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.PointsBalance{{UserID: 4, Points: 140}, {UserID: 3, Points: 120}}, ranking)

	_, err = svc.Award(ctx, usecase.AwardInput{UserID: 99, Points: 1})
	assertAppError(t, err, domainerrors.ErrUserNotFound)

	_, err = svc.Balance(ctx, 99)
	assertAppError(t, err, domainerrors.ErrUserNotFound)
}

func TestEngagementService_DashboardIsACopy(t *testing.T) {
	svc := NewEngagementService(newTestStore(t), discardLogger())
	ctx := context.Background()

	dashboard, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	require.Len(t, dashboard.KPIs, 4)
	dashboard.KPIs[0].Label = "mutated"

	again, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pacientes activos", again.KPIs[0].Label)
	assert.Len(t, again.Revenue, 4)
}
