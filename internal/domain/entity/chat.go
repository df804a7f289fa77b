package entity

import (
	"slices"
	"time"
)

// Message exchanged inside an appointment's conversation.
type Message struct {
	ID            int       `json:"id"`
	AppointmentID int       `json:"id_cita"`
	Participants  []int     `json:"participantes"`
	SenderID      int       `json:"id_remitente"`
	SentAt        time.Time `json:"fecha"`
	Text          string    `json:"texto"`
}

func (m *Message) GetID() int { return m.ID }

func (m *Message) Clone() *Message {
	c := *m
	c.Participants = slices.Clone(m.Participants)

	return &c
}

// HasParticipant reports whether userID is part of the conversation.
func (m *Message) HasParticipant(userID int) bool {
	return slices.Contains(m.Participants, userID)
}
