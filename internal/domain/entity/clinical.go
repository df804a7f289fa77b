package entity

import "time"

// HistoryStatusInTreatment is the default state of a new clinical history.
const HistoryStatusInTreatment = "En tratamiento"

// ClinicalHistory (historial) written by a physician for a patient.
type ClinicalHistory struct {
	ID              int       `json:"id"`
	PatientID       int       `json:"id_paciente"`
	Patient         string    `json:"paciente"`
	PhysicianID     int       `json:"id_medico"`
	Physician       string    `json:"medico"`
	Reason          string    `json:"motivo"`
	Diagnosis       string    `json:"diagnostico"`
	Recommendations string    `json:"recomendaciones"`
	Status          string    `json:"estado"`
	ConsultedAt     time.Time `json:"fecha_consulta"`
	UpdatedAt       time.Time `json:"fecha_actualizacion"`
	Background      string    `json:"antecedentes"`
	CurrentIllness  string    `json:"enfermedad_actual"`
	PhysicalExam    string    `json:"examen_fisico"`
	Notes           string    `json:"observaciones"`
}

func (h *ClinicalHistory) GetID() int { return h.ID }

func (h *ClinicalHistory) Clone() *ClinicalHistory {
	c := *h

	return &c
}

// PrescriptionIDBase offsets prescription ids away from other collections.
const PrescriptionIDBase = 5000

// Prescription (receta) attached to a clinical history.
type Prescription struct {
	ID           int    `json:"id"`
	HistoryID    int    `json:"id_historial"`
	Medication   string `json:"medicamento"`
	Dosage       string `json:"dosis"`
	Frequency    string `json:"frecuencia"`
	Duration     string `json:"duracion"`
	Instructions string `json:"indicaciones"`
}

func (p *Prescription) GetID() int { return p.ID }

func (p *Prescription) Clone() *Prescription {
	c := *p

	return &c
}
