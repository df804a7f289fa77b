package usecase

import (
	"context"
	"time"

	"telemock/internal/domain/entity"
)

// Contact is the other side of a conversation.
type Contact struct {
	ID   int         `json:"id"`
	Name string      `json:"nombre"`
	Role entity.Role `json:"rol"`
}

// MessagePreview is the last line shown in the conversation list.
type MessagePreview struct {
	Text     string    `json:"texto"`
	SenderID int       `json:"id_remitente"`
	SentAt   time.Time `json:"fecha"`
}

// Conversation is one counterpart the user has appointments with.
type Conversation struct {
	AppointmentID int            `json:"id_cita"`
	Contact       Contact        `json:"contacto"`
	LastMessage   MessagePreview `json:"ultimo_mensaje"`
}

// SendMessageInput posts a message in an appointment's conversation.
type SendMessageInput struct {
	AppointmentID int    `mapstructure:"id_cita" validate:"required"`
	SenderID      int    `mapstructure:"id_remitente" validate:"required"`
	Text          string `mapstructure:"texto" validate:"required"`
}

// ChatUsecase covers appointment messaging.
type ChatUsecase interface {
	Conversations(ctx context.Context, userID int) ([]*Conversation, error)
	Messages(ctx context.Context, appointmentID, userID int) ([]*entity.Message, error)
	Send(ctx context.Context, input SendMessageInput) (*entity.Message, error)
	// Poll is the long-poll endpoint. The mock never has anything new.
	Poll(ctx context.Context, since time.Time) ([]*entity.Message, time.Time, error)
}
