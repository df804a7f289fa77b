package usecase

import (
	"context"
	"time"

	"telemock/internal/domain/entity"
)

// CreateHistoryInput opens a clinical history for a patient.
type CreateHistoryInput struct {
	PatientID       int    `mapstructure:"id_paciente" validate:"required"`
	PhysicianID     int    `mapstructure:"id_medico" validate:"required"`
	Reason          string `mapstructure:"motivo" validate:"required"`
	Diagnosis       string `mapstructure:"diagnostico"`
	Recommendations string `mapstructure:"recomendaciones"`
	Background      string `mapstructure:"antecedentes"`
	CurrentIllness  string `mapstructure:"enfermedad_actual"`
	PhysicalExam    string `mapstructure:"examen_fisico"`
	Notes           string `mapstructure:"observaciones"`
}

// HistoryFilter narrows history listings; zero values match all.
type HistoryFilter struct {
	PatientID   int
	PhysicianID int
}

// PrescriptionInput adds a prescription to a history.
type PrescriptionInput struct {
	HistoryID    int    `mapstructure:"id_historial" validate:"required"`
	Medication   string `mapstructure:"medicamento" validate:"required"`
	Dosage       string `mapstructure:"dosis"`
	Frequency    string `mapstructure:"frecuencia"`
	Duration     string `mapstructure:"duracion"`
	Instructions string `mapstructure:"indicaciones"`
}

// PatientSummary aggregates one patient's histories with a physician.
type PatientSummary struct {
	PatientID        int                       `json:"id_paciente"`
	Name             string                    `json:"nombre"`
	Total            int                       `json:"total_historiales"`
	LastConsultation time.Time                 `json:"ultima_consulta"`
	Histories        []*entity.ClinicalHistory `json:"historiales"`
}

// ClinicalUsecase manages clinical histories and prescriptions.
type ClinicalUsecase interface {
	ListHistories(ctx context.Context, filter HistoryFilter) ([]*entity.ClinicalHistory, error)
	GetHistory(ctx context.Context, id int) (*entity.ClinicalHistory, error)
	CreateHistory(ctx context.Context, input CreateHistoryInput) (*entity.ClinicalHistory, error)
	// DeleteHistory removes the history and its prescriptions, returning how
	// many prescriptions went with it.
	DeleteHistory(ctx context.Context, id int) (int, error)
	// Patients groups a physician's histories by patient, first seen first.
	Patients(ctx context.Context, physicianID int) ([]*PatientSummary, error)
	ListPrescriptions(ctx context.Context, historyID int) ([]*entity.Prescription, error)
	CreatePrescription(ctx context.Context, input PrescriptionInput) (*entity.Prescription, error)
	DeletePrescription(ctx context.Context, id int) error
}
