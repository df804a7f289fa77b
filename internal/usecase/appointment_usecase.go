package usecase

import (
	"context"

	"telemock/internal/domain/entity"
)

// AppointmentAction names a status-transition request.
type AppointmentAction string

const (
	ActionConfirm       AppointmentAction = "confirm"
	ActionCancel        AppointmentAction = "cancel"
	ActionSchedule      AppointmentAction = "schedule"
	ActionMarkCompleted AppointmentAction = "mark-completed"
	ActionNotify        AppointmentAction = "notify"
)

// ActionInput applies an action to an appointment. Date and Time are only
// read by schedule.
type ActionInput struct {
	ID     int     `mapstructure:"id_cita" validate:"required"`
	Action string  `mapstructure:"action" validate:"required"`
	Date   *string `mapstructure:"fecha" validate:"omitempty,datetime=2006-01-02"`
	Time   *string `mapstructure:"hora" validate:"omitempty,datetime=15:04"`
}

// CreateAppointmentInput books a new appointment.
type CreateAppointmentInput struct {
	PatientID   int      `mapstructure:"id_paciente" validate:"required"`
	PhysicianID int      `mapstructure:"id_medico" validate:"required"`
	SpecialtyID int      `mapstructure:"id_especialidad"`
	TypeID      int      `mapstructure:"id_tipo"`
	Subtype     string   `mapstructure:"subtipo"`
	Modality    string   `mapstructure:"modalidad" validate:"omitempty,oneof=Virtual Presencial"`
	Date        string   `mapstructure:"fecha" validate:"required,datetime=2006-01-02"`
	Time        string   `mapstructure:"hora" validate:"required,datetime=15:04"`
	Amount      *float64 `mapstructure:"monto" validate:"omitempty,gte=0"`
}

// AppointmentFilter narrows appointment listings; zero values match all.
type AppointmentFilter struct {
	Status      entity.AppointmentStatus
	PatientID   int
	PhysicianID int
}

// Slots splits a physician's working day into free and taken hours.
type Slots struct {
	Available []string
	Taken     []string
}

// AppointmentUsecase covers booking catalogs, listings and status transitions.
type AppointmentUsecase interface {
	Specialties(ctx context.Context) ([]*entity.Lookup, error)
	Types(ctx context.Context) ([]*entity.Lookup, error)
	// Physicians lists the directory, optionally only those offering specialtyID.
	Physicians(ctx context.Context, specialtyID int) ([]*entity.Physician, error)
	Slots(ctx context.Context, physicianID int, date string) (*Slots, error)
	List(ctx context.Context, filter AppointmentFilter) ([]*entity.Appointment, error)
	Create(ctx context.Context, input CreateAppointmentInput) (*entity.Appointment, error)
	Act(ctx context.Context, input ActionInput) (*entity.Appointment, error)
}
