package impl

import (
	"cmp"
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
)

const greetingTemplate = "Hola, soy %s. Escríbeme si tienes dudas sobre tu cita."

type chatService struct {
	store  *memory.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewChatService creates the appointment messaging service.
func NewChatService(store *memory.Store, logger *slog.Logger) usecase.ChatUsecase {
	return &chatService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Conversations returns one entry per counterpart, keyed on the most recent
// appointment with that person, newest first.
func (s *chatService) Conversations(_ context.Context, userID int) ([]*usecase.Conversation, error) {
	if _, ok := s.store.Users.Find(userID); !ok {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound.WithDetails(strconv.Itoa(userID)))
	}

	appointments := s.store.Appointments.Filter(func(a *entity.Appointment) bool { return a.Involves(userID) })
	latest := lo.Values(lo.Reduce(appointments, func(acc map[int]*entity.Appointment, a *entity.Appointment, _ int) map[int]*entity.Appointment {
		counterpart := a.Counterpart(userID)
		if current, ok := acc[counterpart]; !ok || compareSchedule(a, current) > 0 {
			acc[counterpart] = a
		}

		return acc
	}, map[int]*entity.Appointment{}))

	slices.SortFunc(latest, func(a, b *entity.Appointment) int { return compareSchedule(b, a) })

	conversations := make([]*usecase.Conversation, 0, len(latest))
	for _, appointment := range latest {
		contact, ok := s.store.Users.Find(appointment.Counterpart(userID))
		if !ok {
			continue
		}
		conversations = append(conversations, &usecase.Conversation{
			AppointmentID: appointment.ID,
			Contact:       usecase.Contact{ID: contact.ID, Name: contact.FullName(), Role: contact.Role},
			LastMessage:   s.preview(userID, appointment, contact),
		})
	}

	return conversations, nil
}

func (s *chatService) Messages(_ context.Context, appointmentID, userID int) ([]*entity.Message, error) {
	if _, err := s.participantOf(appointmentID, userID); err != nil {
		return nil, err
	}

	matching := s.store.Messages.Filter(func(m *entity.Message) bool {
		return m.AppointmentID == appointmentID && m.HasParticipant(userID)
	})

	return memory.CloneAll(matching), nil
}

func (s *chatService) Send(ctx context.Context, input usecase.SendMessageInput) (*entity.Message, error) {
	appointment, err := s.participantOf(input.AppointmentID, input.SenderID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		ID:            s.store.Messages.NextID(0),
		AppointmentID: appointment.ID,
		Participants:  []int{appointment.PatientID, appointment.PhysicianID},
		SenderID:      input.SenderID,
		SentAt:        s.now().UTC(),
		Text:          input.Text,
	}
	s.store.Messages.Insert(message)

	loggerFrom(ctx, s.logger).Debug("message sent",
		slog.Int("appointment_id", appointment.ID),
		slog.Int("sender_id", input.SenderID),
	)

	return message.Clone(), nil
}

// Poll never has new messages; the cursor only moves forward.
func (s *chatService) Poll(_ context.Context, since time.Time) ([]*entity.Message, time.Time, error) {
	cursor := s.now().UTC()
	if since.After(cursor) {
		cursor = since
	}

	return []*entity.Message{}, cursor, nil
}

func (s *chatService) participantOf(appointmentID, userID int) (*entity.Appointment, error) {
	appointment, ok := s.store.Appointments.Find(appointmentID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrAppointmentNotFound.WithDetails(strconv.Itoa(appointmentID)))
	}
	if !appointment.Involves(userID) {
		return nil, errors.WithStack(domainerrors.ErrNotParticipant.WithDetails(strconv.Itoa(userID)))
	}

	return appointment, nil
}

// preview is the last message exchanged with contact in any appointment, or a
// greeting from contact dated at the appointment when they never wrote.
func (s *chatService) preview(userID int, appointment *entity.Appointment, contact *entity.User) usecase.MessagePreview {
	messages := s.store.Messages.Filter(func(m *entity.Message) bool {
		return m.HasParticipant(userID) && m.HasParticipant(contact.ID)
	})
	if last, ok := lo.Last(messages); ok {
		return usecase.MessagePreview{Text: last.Text, SenderID: last.SenderID, SentAt: last.SentAt}
	}

	sentAt, err := time.Parse(time.DateOnly+" 15:04", appointment.Date+" "+appointment.Time)
	if err != nil {
		sentAt = time.Time{}
	}

	return usecase.MessagePreview{
		Text:     fmt.Sprintf(greetingTemplate, contact.FullName()),
		SenderID: contact.ID,
		SentAt:   sentAt,
	}
}

// compareSchedule orders appointments by date, hour, then id.
func compareSchedule(a, b *entity.Appointment) int {
	return cmp.Or(
		cmp.Compare(a.Date, b.Date),
		cmp.Compare(a.Time, b.Time),
		cmp.Compare(a.ID, b.ID),
	)
}
