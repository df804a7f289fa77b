package impl

import (
	"context"
	"net/http"
	"testing"

	"telemock/internal/domain/entity"
	domainerrors "telemock/internal/domain/errors"
	"telemock/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointmentService(t *testing.T) *appointmentService {
	t.Helper()

	svc := NewAppointmentService(newTestStore(t), discardLogger()).(*appointmentService)
	svc.now = clock

	return svc
}

func TestAppointmentService_Physicians(t *testing.T) {
	svc := newAppointmentService(t)
	ctx := context.Background()

	all, err := svc.Physicians(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	cardiology, err := svc.Physicians(ctx, 2)
	require.NoError(t, err)
	require.Len(t, cardiology, 1)
	assert.Equal(t, 2, cardiology[0].ID)

	pediatrics, err := svc.Physicians(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, pediatrics)
}

func TestAppointmentService_Slots(t *testing.T) {
	svc := newAppointmentService(t)
	ctx := context.Background()

	slots, err := svc.Slots(ctx, 2, "2025-07-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, slots.Taken)
	assert.Len(t, slots.Available, 8)
	assert.Equal(t, "08:00", slots.Available[0])
	assert.Equal(t, "16:00", slots.Available[7])

	// 1204 is cancelled and frees its slot.
	slots, err = svc.Slots(ctx, 2, "2025-06-25")
	require.NoError(t, err)
	assert.Empty(t, slots.Taken)
	assert.Contains(t, slots.Available, "14:00")

	_, err = svc.Slots(ctx, 3, "2025-07-10")
	assertAppError(t, err, domainerrors.ErrPhysicianNotFound)

	_, err = svc.Slots(ctx, 2, "10/07/2025")
	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestAppointmentService_List(t *testing.T) {
	svc := newAppointmentService(t)

	confirmed, err := svc.List(context.Background(), usecase.AppointmentFilter{Status: entity.AppointmentConfirmed, PhysicianID: 2})
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, 1201, confirmed[0].ID)

	mine, err := svc.List(context.Background(), usecase.AppointmentFilter{PatientID: 4})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestAppointmentService_Create(t *testing.T) {
	svc := newAppointmentService(t)
	ctx := context.Background()

	appointment, err := svc.Create(ctx, usecase.CreateAppointmentInput{
		PatientID:   4,
		PhysicianID: 2,
		TypeID:      9,
		Date:        "2025-08-05",
		Time:        "11:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 1205, appointment.ID)
	assert.Equal(t, "Jorge Paredes", appointment.Patient)
	assert.Equal(t, "Carlos Mendoza", appointment.Physician)
	assert.Equal(t, "Cardiología", appointment.Specialty)
	assert.Equal(t, "Consulta", appointment.Type)
	assert.Equal(t, entity.ModalityVirtual, appointment.Modality)
	assert.Equal(t, entity.AppointmentReserved, appointment.Status)
	assert.Equal(t, entity.PaymentPending, appointment.PaymentStatus)
	assert.Equal(t, "80", appointment.Amount.String())

	_, err = svc.Create(ctx, usecase.CreateAppointmentInput{PatientID: 3, PhysicianID: 2, Date: "2025-08-05", Time: "11:00"})
	status := assertAppError(t, err, domainerrors.ErrSlotTaken)
	assert.Equal(t, http.StatusConflict, status)

	_, err = svc.Create(ctx, usecase.CreateAppointmentInput{PatientID: 2, PhysicianID: 2, Date: "2025-08-06", Time: "11:00"})
	assertAppError(t, err, domainerrors.ErrPatientNotFound)

	_, err = svc.Create(ctx, usecase.CreateAppointmentInput{PatientID: 3, PhysicianID: 2, SpecialtyID: 42, Date: "2025-08-06", Time: "11:00"})
	assertAppError(t, err, domainerrors.ErrSpecialtyNotFound)
}

func TestAppointmentService_Act(t *testing.T) {
	tests := []struct {
		name       string
		input      usecase.ActionInput
		wantStatus entity.AppointmentStatus
		wantErr    *domainerrors.BaseError
	}{
		{name: "confirm reserved", input: usecase.ActionInput{ID: 1202, Action: "confirm"}, wantStatus: entity.AppointmentConfirmed},
		{name: "confirm confirmed", input: usecase.ActionInput{ID: 1201, Action: "confirm"}, wantErr: domainerrors.ErrInvalidTransition},
		{name: "cancel confirmed", input: usecase.ActionInput{ID: 1201, Action: "cancel"}, wantStatus: entity.AppointmentCancelled},
		{name: "cancel cancelled", input: usecase.ActionInput{ID: 1204, Action: "cancel"}, wantErr: domainerrors.ErrInvalidTransition},
		{name: "complete confirmed", input: usecase.ActionInput{ID: 1201, Action: "mark-completed"}, wantStatus: entity.AppointmentCompleted},
		{name: "complete reserved", input: usecase.ActionInput{ID: 1202, Action: "mark-completed"}, wantErr: domainerrors.ErrInvalidTransition},
		{name: "notify completed", input: usecase.ActionInput{ID: 1203, Action: "notify"}, wantErr: domainerrors.ErrInvalidTransition},
		{name: "notify keeps status", input: usecase.ActionInput{ID: 1202, Action: "notify"}, wantStatus: entity.AppointmentReserved},
		{name: "unknown action", input: usecase.ActionInput{ID: 1202, Action: "archive"}, wantErr: domainerrors.ErrUnsupportedAction},
		{name: "unknown appointment", input: usecase.ActionInput{ID: 1, Action: "confirm"}, wantErr: domainerrors.ErrAppointmentNotFound},
		{name: "schedule without date", input: usecase.ActionInput{ID: 1202, Action: "schedule"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "schedule onto taken slot", input: usecase.ActionInput{ID: 1202, Action: "schedule", Date: ptr("2025-07-10"), Time: ptr("09:00")}, wantErr: domainerrors.ErrSlotTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAppointmentService(t)

			appointment, err := svc.Act(context.Background(), tt.input)
			if tt.wantErr != nil {
				assertAppError(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, appointment.Status)
		})
	}
}

func TestAppointmentService_ActStampsTimes(t *testing.T) {
	svc := newAppointmentService(t)
	ctx := context.Background()

	completed, err := svc.Act(ctx, usecase.ActionInput{ID: 1201, Action: "mark-completed"})
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, fixedNow, *completed.CompletedAt)

	notified, err := svc.Act(ctx, usecase.ActionInput{ID: 1202, Action: "notify"})
	require.NoError(t, err)
	require.NotNil(t, notified.NotifiedAt)
	assert.Equal(t, fixedNow, *notified.NotifiedAt)
}

func TestAppointmentService_Schedule(t *testing.T) {
	svc := newAppointmentService(t)
	ctx := context.Background()

	moved, err := svc.Act(ctx, usecase.ActionInput{ID: 1202, Action: "schedule", Time: ptr("15:00")})
	require.NoError(t, err)
	assert.Equal(t, "2025-07-15", moved.Date)
	assert.Equal(t, "15:00", moved.Time)

	// Rescheduling onto its own slot is not a conflict.
	same, err := svc.Act(ctx, usecase.ActionInput{ID: 1202, Action: "schedule", Date: ptr("2025-07-15"), Time: ptr("15:00")})
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentReserved, same.Status)
}
