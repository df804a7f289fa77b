package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"telemock/internal/domain/entity"
	domainerrors "telemock/internal/domain/errors"
	"telemock/internal/infra/persistence/memory"
	"telemock/internal/usecase"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	firstSlotHour = 8
	lastSlotHour  = 16
)

// defaultAppointmentAmount is charged when a booking does not name a fee.
var defaultAppointmentAmount = decimal.NewFromInt(80)

type appointmentService struct {
	store  *memory.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewAppointmentService creates the booking and appointment lifecycle service.
func NewAppointmentService(store *memory.Store, logger *slog.Logger) usecase.AppointmentUsecase {
	return &appointmentService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (s *appointmentService) Specialties(_ context.Context) ([]*entity.Lookup, error) {
	return s.store.Specialties.Snapshot(), nil
}

func (s *appointmentService) Types(_ context.Context) ([]*entity.Lookup, error) {
	return s.store.AppointmentTypes.Snapshot(), nil
}

func (s *appointmentService) Physicians(_ context.Context, specialtyID int) ([]*entity.Physician, error) {
	if specialtyID == 0 {
		return s.store.Physicians.Snapshot(), nil
	}

	matching := s.store.Physicians.Filter(func(p *entity.Physician) bool {
		return slices.Contains(p.Specialties, specialtyID)
	})

	return memory.CloneAll(matching), nil
}

// Slots lists the hourly slots of a working day and which ones already hold
// a non-cancelled appointment.
func (s *appointmentService) Slots(_ context.Context, physicianID int, date string) (*usecase.Slots, error) {
	if _, err := lookupPhysician(s.store, physicianID); err != nil {
		return nil, err
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("fecha"))
	}

	slots := &usecase.Slots{Available: []string{}, Taken: []string{}}
	for hour := firstSlotHour; hour <= lastSlotHour; hour++ {
		slot := fmt.Sprintf("%02d:00", hour)
		if s.slotTaken(physicianID, date, slot, 0) {
			slots.Taken = append(slots.Taken, slot)
		} else {
			slots.Available = append(slots.Available, slot)
		}
	}

	return slots, nil
}

func (s *appointmentService) List(_ context.Context, filter usecase.AppointmentFilter) ([]*entity.Appointment, error) {
	matching := s.store.Appointments.Filter(func(a *entity.Appointment) bool {
		return (filter.Status == "" || a.Status == filter.Status) &&
			(filter.PatientID == 0 || a.PatientID == filter.PatientID) &&
			(filter.PhysicianID == 0 || a.PhysicianID == filter.PhysicianID)
	})

	return memory.CloneAll(matching), nil
}

func (s *appointmentService) Create(ctx context.Context, input usecase.CreateAppointmentInput) (*entity.Appointment, error) {
	patient, err := lookupPatient(s.store, input.PatientID)
	if err != nil {
		return nil, err
	}
	physician, err := lookupPhysician(s.store, input.PhysicianID)
	if err != nil {
		return nil, err
	}

	specialtyID := input.SpecialtyID
	if specialtyID == 0 {
		if entry, ok := s.store.Physicians.Find(physician.ID); ok && len(entry.Specialties) > 0 {
			specialtyID = entry.Specialties[0]
		}
	}
	specialty, ok := s.store.Specialties.Find(specialtyID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrSpecialtyNotFound.WithDetails(strconv.Itoa(specialtyID)))
	}

	if s.slotTaken(physician.ID, input.Date, input.Time, 0) {
		return nil, errors.WithStack(domainerrors.ErrSlotTaken.WithDetails(input.Date + " " + input.Time))
	}

	modality := entity.Modality(input.Modality)
	if modality == "" {
		modality = entity.ModalityVirtual
	}
	amount := defaultAppointmentAmount
	if input.Amount != nil {
		amount = decimal.NewFromFloat(*input.Amount)
	}

	appointment := &entity.Appointment{
		ID:            s.store.Appointments.NextID(0),
		PatientID:     patient.ID,
		Patient:       patient.FullName(),
		PhysicianID:   physician.ID,
		Physician:     physician.FullName(),
		SpecialtyID:   specialty.ID,
		Specialty:     specialty.Name,
		Subtype:       input.Subtype,
		Modality:      modality,
		Status:        entity.AppointmentReserved,
		PaymentStatus: entity.PaymentPending,
		Date:          input.Date,
		Time:          input.Time,
		Amount:        amount,
	}
	appointment.TypeID, appointment.Type = lookupName(s.store.AppointmentTypes, input.TypeID)
	s.store.Appointments.Insert(appointment)

	loggerFrom(ctx, s.logger).Info("appointment booked",
		slog.Int("appointment_id", appointment.ID),
		slog.Int("physician_id", physician.ID),
		slog.String("slot", input.Date+" "+input.Time),
	)

	return appointment.Clone(), nil
}

// Act applies one lifecycle action. Terminal appointments reject everything.
func (s *appointmentService) Act(ctx context.Context, input usecase.ActionInput) (*entity.Appointment, error) {
	appointment, ok := s.store.Appointments.Find(input.ID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrAppointmentNotFound.WithDetails(strconv.Itoa(input.ID)))
	}

	action := usecase.AppointmentAction(input.Action)
	if !lo.Contains(supportedActions, action) {
		return nil, errors.WithStack(domainerrors.ErrUnsupportedAction.WithDetails(input.Action))
	}
	if appointment.Status.IsTerminal() {
		return nil, invalidTransition(appointment, action)
	}

	switch action {
	case usecase.ActionConfirm:
		if appointment.Status != entity.AppointmentReserved {
			return nil, invalidTransition(appointment, action)
		}
		appointment.Status = entity.AppointmentConfirmed
	case usecase.ActionCancel:
		appointment.Status = entity.AppointmentCancelled
	case usecase.ActionSchedule:
		if input.Date == nil && input.Time == nil {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("fecha, hora"))
		}
		date, hour := appointment.Date, appointment.Time
		set(&date, input.Date)
		set(&hour, input.Time)
		if s.slotTaken(appointment.PhysicianID, date, hour, appointment.ID) {
			return nil, errors.WithStack(domainerrors.ErrSlotTaken.WithDetails(date + " " + hour))
		}
		appointment.Date, appointment.Time = date, hour
	case usecase.ActionMarkCompleted:
		if appointment.Status != entity.AppointmentConfirmed {
			return nil, invalidTransition(appointment, action)
		}
		completedAt := s.now().UTC()
		appointment.Status = entity.AppointmentCompleted
		appointment.CompletedAt = &completedAt
	case usecase.ActionNotify:
		notifiedAt := s.now().UTC()
		appointment.NotifiedAt = &notifiedAt
	}

	loggerFrom(ctx, s.logger).Info("appointment action applied",
		slog.Int("appointment_id", appointment.ID),
		slog.String("action", input.Action),
		slog.String("status", string(appointment.Status)),
	)

	return appointment.Clone(), nil
}

var supportedActions = []usecase.AppointmentAction{
	usecase.ActionConfirm,
	usecase.ActionCancel,
	usecase.ActionSchedule,
	usecase.ActionMarkCompleted,
	usecase.ActionNotify,
}

// slotTaken reports whether the physician already has a live appointment at
// date and hour, ignoring the appointment with id except.
func (s *appointmentService) slotTaken(physicianID int, date, hour string, except int) bool {
	return lo.ContainsBy(s.store.Appointments.All(), func(a *entity.Appointment) bool {
		return a.ID != except &&
			a.PhysicianID == physicianID &&
			a.Status != entity.AppointmentCancelled &&
			a.Date == date &&
			a.Time == hour
	})
}

func invalidTransition(a *entity.Appointment, action usecase.AppointmentAction) error {
	return errors.WithStack(domainerrors.ErrInvalidTransition.WithDetails(fmt.Sprintf("%s desde %s", action, a.Status)))
}
