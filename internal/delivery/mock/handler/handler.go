// Package handler maps resource paths onto the usecases and shapes each
// endpoint's envelope keys.
package handler

import (
	"context"
	"time"

	"telemock/internal/delivery/mock"
	domainerrors "telemock/internal/domain/errors"
	"telemock/internal/usecase"

	"github.com/pkg/errors"
)

// requireID reads a positive integer field or fails validation naming it.
func requireID(req *mock.Request, key string) (int, error) {
	id := req.Int(key)
	if id <= 0 {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(key))
	}

	return id, nil
}

// requireString reads a non-empty string field or fails validation naming it.
func requireString(req *mock.Request, key string) (string, error) {
	value := req.String(key)
	if value == "" {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(key))
	}

	return value, nil
}

// historyResponse answers both clinical history endpoints: one record under
// data when id_historial is given, otherwise the filtered list.
func historyResponse(ctx context.Context, uc usecase.ClinicalUsecase, req *mock.Request) (*mock.Response, error) {
	if id := req.Int("id_historial"); id > 0 {
		history, err := uc.GetHistory(ctx, id)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return mock.OK(mock.Fields{"data": history}), nil
	}

	histories, err := uc.ListHistories(ctx, usecase.HistoryFilter{
		PatientID:   req.Int("id_paciente"),
		PhysicianID: req.Int("id_medico"),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"data": histories}), nil
}

func appointmentAction(ctx context.Context, uc usecase.AppointmentUsecase, req *mock.Request) (*mock.Response, error) {
	var input usecase.ActionInput
	if err := mock.Bind(req, &input); err != nil {
		return nil, err
	}

	appointment, err := uc.Act(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"cita": appointment}), nil
}

func parseCursor(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	cursor, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return cursor
}
