package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"telemock/internal/domain/entity"
	domainerrors "telemock/internal/domain/errors"
	"telemock/internal/infra/persistence/memory"
	"telemock/internal/usecase"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type clinicalService struct {
	store  *memory.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewClinicalService creates the clinical history and prescription service.
func NewClinicalService(store *memory.Store, logger *slog.Logger) usecase.ClinicalUsecase {
	return &clinicalService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (s *clinicalService) ListHistories(_ context.Context, filter usecase.HistoryFilter) ([]*entity.ClinicalHistory, error) {
	return memory.CloneAll(s.histories(filter)), nil
}

func (s *clinicalService) GetHistory(_ context.Context, id int) (*entity.ClinicalHistory, error) {
	history, ok := s.store.Histories.Find(id)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrHistoryNotFound.WithDetails(strconv.Itoa(id)))
	}

	return history.Clone(), nil
}

func (s *clinicalService) CreateHistory(ctx context.Context, input usecase.CreateHistoryInput) (*entity.ClinicalHistory, error) {
	patient, err := lookupPatient(s.store, input.PatientID)
	if err != nil {
		return nil, err
	}
	physician, err := lookupPhysician(s.store, input.PhysicianID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	history := &entity.ClinicalHistory{
		ID:              s.store.Histories.NextID(0),
		PatientID:       patient.ID,
		Patient:         patient.FullName(),
		PhysicianID:     physician.ID,
		Physician:       physician.FullName(),
		Reason:          input.Reason,
		Diagnosis:       input.Diagnosis,
		Recommendations: input.Recommendations,
		Status:          entity.HistoryStatusInTreatment,
		ConsultedAt:     now,
		UpdatedAt:       now,
		Background:      input.Background,
		CurrentIllness:  input.CurrentIllness,
		PhysicalExam:    input.PhysicalExam,
		Notes:           input.Notes,
	}
	s.store.Histories.Insert(history)

	loggerFrom(ctx, s.logger).Info("clinical history created",
		slog.Int("history_id", history.ID),
		slog.Int("patient_id", patient.ID),
	)

	return history.Clone(), nil
}

func (s *clinicalService) DeleteHistory(ctx context.Context, id int) (int, error) {
	if !s.store.Histories.Remove(id) {
		return 0, errors.WithStack(domainerrors.ErrHistoryNotFound.WithDetails(strconv.Itoa(id)))
	}

	removed := s.store.Prescriptions.RemoveWhere(func(p *entity.Prescription) bool {
		return p.HistoryID == id
	})

	loggerFrom(ctx, s.logger).Info("clinical history deleted",
		slog.Int("history_id", id),
		slog.Int("prescriptions_removed", removed),
	)

	return removed, nil
}

func (s *clinicalService) Patients(_ context.Context, physicianID int) ([]*usecase.PatientSummary, error) {
	if _, err := lookupPhysician(s.store, physicianID); err != nil {
		return nil, err
	}

	histories := s.histories(usecase.HistoryFilter{PhysicianID: physicianID})
	byPatient := lo.GroupBy(histories, func(h *entity.ClinicalHistory) int { return h.PatientID })
	order := lo.Uniq(lo.Map(histories, func(h *entity.ClinicalHistory, _ int) int { return h.PatientID }))

	summaries := make([]*usecase.PatientSummary, 0, len(order))
	for _, patientID := range order {
		group := byPatient[patientID]
		summary := &usecase.PatientSummary{
			PatientID: patientID,
			Name:      group[0].Patient,
			Total:     len(group),
			Histories: memory.CloneAll(group),
		}
		for _, h := range group {
			if h.ConsultedAt.After(summary.LastConsultation) {
				summary.LastConsultation = h.ConsultedAt
			}
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (s *clinicalService) ListPrescriptions(_ context.Context, historyID int) ([]*entity.Prescription, error) {
	if historyID == 0 {
		return s.store.Prescriptions.Snapshot(), nil
	}

	matching := s.store.Prescriptions.Filter(func(p *entity.Prescription) bool {
		return p.HistoryID == historyID
	})

	return memory.CloneAll(matching), nil
}

func (s *clinicalService) CreatePrescription(ctx context.Context, input usecase.PrescriptionInput) (*entity.Prescription, error) {
	history, ok := s.store.Histories.Find(input.HistoryID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrHistoryNotFound.WithDetails(strconv.Itoa(input.HistoryID)))
	}

	prescription := &entity.Prescription{
		ID:           s.store.Prescriptions.NextID(entity.PrescriptionIDBase),
		HistoryID:    history.ID,
		Medication:   input.Medication,
		Dosage:       input.Dosage,
		Frequency:    input.Frequency,
		Duration:     input.Duration,
		Instructions: input.Instructions,
	}
	s.store.Prescriptions.Insert(prescription)
	history.UpdatedAt = s.now().UTC()

	loggerFrom(ctx, s.logger).Info("prescription created",
		slog.Int("prescription_id", prescription.ID),
		slog.Int("history_id", history.ID),
	)

	return prescription.Clone(), nil
}

func (s *clinicalService) DeletePrescription(_ context.Context, id int) error {
	if !s.store.Prescriptions.Remove(id) {
		return errors.WithStack(domainerrors.ErrPrescriptionNotFound.WithDetails(strconv.Itoa(id)))
	}

	return nil
}

func (s *clinicalService) histories(filter usecase.HistoryFilter) []*entity.ClinicalHistory {
	return s.store.Histories.Filter(func(h *entity.ClinicalHistory) bool {
		return (filter.PatientID == 0 || h.PatientID == filter.PatientID) &&
			(filter.PhysicianID == 0 || h.PhysicianID == filter.PhysicianID)
	})
}
