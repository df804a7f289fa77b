package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"telemock/internal/delivery/mock"
	"telemock/internal/usecase"

	"github.com/pkg/errors"
)

// ChatHandler serves the chat/ resources.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		uc:     uc,
		logger: logger,
	}
}

// Group registers the messaging routes.
func (h *ChatHandler) Group() *mock.Group {
	g := mock.NewGroup("chat", "chat")
	g.Handle("conversaciones.php", h.Conversations, http.MethodGet)
	g.Handle("mensajes.php", h.Messages, http.MethodGet)
	g.Handle("mensajes.php", h.Send, http.MethodPost)
	g.Handle("stream.php", h.Stream, http.MethodGet)

	return g
}

func (h *ChatHandler) Conversations(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	userID, err := requireID(req, "id_usuario")
	if err != nil {
		return nil, err
	}

	conversations, err := h.uc.Conversations(ctx, userID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"conversaciones": conversations}), nil
}

func (h *ChatHandler) Messages(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	appointmentID, err := requireID(req, "id_cita")
	if err != nil {
		return nil, err
	}
	userID, err := requireID(req, "id_usuario")
	if err != nil {
		return nil, err
	}

	messages, err := h.uc.Messages(ctx, appointmentID, userID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"mensajes": messages}), nil
}

func (h *ChatHandler) Send(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var input usecase.SendMessageInput
	if err := mock.Bind(req, &input); err != nil {
		return nil, err
	}

	message, err := h.uc.Send(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.Created(mock.Fields{"mensaje": message}), nil
}

// Stream is the long-poll endpoint; it always answers with an empty batch.
func (h *ChatHandler) Stream(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	messages, cursor, err := h.uc.Poll(ctx, parseCursor(req.String("cursor")))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"mensajes": messages, "cursor": cursor.Format(time.RFC3339Nano)}), nil
}
