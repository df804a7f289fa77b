package handler

import (
	"context"
	"log/slog"
	"net/http"

	"telemock/internal/delivery/mock"
	"telemock/internal/domain/entity"
	"telemock/internal/usecase"

	"github.com/pkg/errors"
)

// MedicHandler serves the MedicPHP/ resources.
type MedicHandler struct {
	clinical     usecase.ClinicalUsecase
	appointments usecase.AppointmentUsecase
	logger       *slog.Logger
}

// NewMedicHandler is the constructor for MedicHandler, injected by Fx.
func NewMedicHandler(clinical usecase.ClinicalUsecase, appointments usecase.AppointmentUsecase, logger *slog.Logger) *MedicHandler {
	return &MedicHandler{
		clinical:     clinical,
		appointments: appointments,
		logger:       logger,
	}
}

// Group registers the physician routes.
func (h *MedicHandler) Group() *mock.Group {
	g := mock.NewGroup("medic", "MedicPHP")
	g.Handle("getPacientes.php", h.GetPatients, http.MethodGet)
	g.Handle("getHistorial.php", h.GetHistory, http.MethodGet)
	g.Handle("createHistorial.php", h.CreateHistory, http.MethodPost)
	g.Handle("getCitas.php", h.GetAppointments, http.MethodGet)
	g.Handle("getCitasConfirmadas.php", h.GetConfirmedAppointments, http.MethodGet)
	g.Handle("citaAction.php", h.AppointmentAction, http.MethodPost, http.MethodPut)
	g.Handle("recetas.php", h.ListPrescriptions, http.MethodGet)
	g.Handle("recetas.php", h.CreatePrescription, http.MethodPost)
	g.Handle("recetas.php", h.DeletePrescription, http.MethodDelete)

	return g
}

// GetPatients groups the physician's histories by patient.
func (h *MedicHandler) GetPatients(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	physicianID, err := requireID(req, "id_medico")
	if err != nil {
		return nil, err
	}

	patients, err := h.clinical.Patients(ctx, physicianID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"pacientes": patients, "total": len(patients)}), nil
}

func (h *MedicHandler) GetHistory(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	return historyResponse(ctx, h.clinical, req)
}

func (h *MedicHandler) CreateHistory(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var input usecase.CreateHistoryInput
	if err := mock.Bind(req, &input); err != nil {
		return nil, err
	}

	history, err := h.clinical.CreateHistory(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.Created(mock.Fields{"historial": history}).WithMessage("Historial creado"), nil
}

func (h *MedicHandler) GetAppointments(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	return h.appointmentsFor(ctx, req, entity.AppointmentStatus(req.String("estado")))
}

func (h *MedicHandler) GetConfirmedAppointments(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	return h.appointmentsFor(ctx, req, entity.AppointmentConfirmed)
}

func (h *MedicHandler) appointmentsFor(ctx context.Context, req *mock.Request, status entity.AppointmentStatus) (*mock.Response, error) {
	physicianID, err := requireID(req, "id_medico")
	if err != nil {
		return nil, err
	}

	appointments, err := h.appointments.List(ctx, usecase.AppointmentFilter{
		Status:      status,
		PhysicianID: physicianID,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"citas": appointments}), nil
}

func (h *MedicHandler) AppointmentAction(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	return appointmentAction(ctx, h.appointments, req)
}

func (h *MedicHandler) ListPrescriptions(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	prescriptions, err := h.clinical.ListPrescriptions(ctx, req.Int("id_historial"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"recetas": prescriptions}), nil
}

func (h *MedicHandler) CreatePrescription(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var input usecase.PrescriptionInput
	if err := mock.Bind(req, &input); err != nil {
		return nil, err
	}

	prescription, err := h.clinical.CreatePrescription(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.Created(mock.Fields{"receta": prescription}).WithMessage("Receta creada"), nil
}

func (h *MedicHandler) DeletePrescription(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	id, err := requireID(req, "id_receta")
	if err != nil {
		return nil, err
	}

	if err := h.clinical.DeletePrescription(ctx, id); err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(nil).WithMessage("Receta eliminada"), nil
}
