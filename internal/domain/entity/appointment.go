package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppointmentStatus is the lifecycle state of a Cita.
type AppointmentStatus string

const (
	AppointmentReserved  AppointmentStatus = "Reservada"
	AppointmentConfirmed AppointmentStatus = "Confirmada"
	AppointmentCompleted AppointmentStatus = "Completada"
	AppointmentCancelled AppointmentStatus = "Cancelada"
)

// IsValid checks if the status is one of the listed values.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentReserved, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentCompleted || s == AppointmentCancelled
}

// PaymentStatus tracks whether the appointment fee was paid.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pendiente"
	PaymentPaid    PaymentStatus = "Pagado"
)

// Modality is how the consultation takes place.
type Modality string

const (
	ModalityVirtual  Modality = "Virtual"
	ModalityInPerson Modality = "Presencial"
)

// IsValid checks if the modality is one of the listed values.
func (m Modality) IsValid() bool {
	return m == ModalityVirtual || m == ModalityInPerson
}

// Appointment (cita) between a patient and a physician. Fecha is YYYY-MM-DD
// and Hora is HH:MM.
type Appointment struct {
	ID            int               `json:"id"`
	PatientID     int               `json:"id_paciente"`
	Patient       string            `json:"paciente"`
	PhysicianID   int               `json:"id_medico"`
	Physician     string            `json:"medico"`
	SpecialtyID   int               `json:"id_especialidad"`
	Specialty     string            `json:"especialidad"`
	TypeID        int               `json:"id_tipo"`
	Type          string            `json:"tipo"`
	Subtype       string            `json:"subtipo,omitempty"`
	Modality      Modality          `json:"modalidad"`
	Status        AppointmentStatus `json:"estado"`
	PaymentStatus PaymentStatus     `json:"estado_pago"`
	Date          string            `json:"fecha"`
	Time          string            `json:"hora"`
	Amount        decimal.Decimal   `json:"monto"`
	CompletedAt   *time.Time        `json:"completada_en,omitempty"`
	NotifiedAt    *time.Time        `json:"notificada_en,omitempty"`
}

func (a *Appointment) GetID() int { return a.ID }

func (a *Appointment) Clone() *Appointment {
	c := *a
	if a.CompletedAt != nil {
		t := *a.CompletedAt
		c.CompletedAt = &t
	}
	if a.NotifiedAt != nil {
		t := *a.NotifiedAt
		c.NotifiedAt = &t
	}

	return &c
}

// Involves reports whether the user is the patient or the physician.
func (a *Appointment) Involves(userID int) bool {
	return a.PatientID == userID || a.PhysicianID == userID
}

// Counterpart returns the other participant of the appointment.
func (a *Appointment) Counterpart(userID int) int {
	if a.PatientID == userID {
		return a.PhysicianID
	}

	return a.PatientID
}

// Physician is a read-only directory entry. Its id equals the physician's user id.
type Physician struct {
	ID          int        `json:"id"`
	Name        string     `json:"nombre"`
	Specialties []int      `json:"especialidades"`
	Modalities  []Modality `json:"modalidades"`
}

func (p *Physician) GetID() int { return p.ID }

func (p *Physician) Clone() *Physician {
	c := *p
	c.Specialties = append([]int(nil), p.Specialties...)
	c.Modalities = append([]Modality(nil), p.Modalities...)

	return &c
}
