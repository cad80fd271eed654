package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Almaash/community-app-admin/internal/api"
	"github.com/Almaash/community-app-admin/internal/domain"
	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
	"github.com/Almaash/community-app-admin/pkg/httpclient"
	"github.com/Almaash/community-app-admin/pkg/validator"
)

// ChatService covers conversations. Single-shot calls go through the shared
// pipeline; the Watch polling loop goes through a separate circuit-breaker
// wrapped pipeline so a flapping backend is not hammered every tick.
type ChatService struct {
	api       *api.Client
	poll      *api.Client
	endpoints *api.Endpoints
	logger    *slog.Logger
}

// NewChatService creates a chat service. poll is the pipeline used by Watch;
// pass the shared client wrapped in a circuit breaker, or the shared client
// itself when no breaker is wanted.
func NewChatService(client, poll *api.Client, endpoints *api.Endpoints, logger *slog.Logger) *ChatService {
	if poll == nil {
		poll = client
	}
	return &ChatService{api: client, poll: poll, endpoints: endpoints, logger: logger}
}

// MessageInput sends a chat message. Text is trimmed before validation, so
// whitespace-only messages are rejected without a network call.
type MessageInput struct {
	ChatID   string `json:"chatId" validate:"required"`
	SenderID string `json:"senderId" validate:"required"`
	Text     string `json:"text" validate:"required,max=4000"`
}

// InitiateInput opens a conversation between two distinct users.
type InitiateInput struct {
	UserID1 string `json:"userId1" validate:"required"`
	UserID2 string `json:"userId2" validate:"required,nefield=UserID1"`
}

// UserChats returns a member's conversations.
func (s *ChatService) UserChats(ctx context.Context, userID string) ([]domain.Chat, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	env, err := s.api.Get(ctx, s.endpoints.UserChats(userID), nil)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not load chats"); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, nil
	}
	var chats []domain.Chat
	if err := env.DecodeData(&chats); err != nil {
		return nil, apperrors.Internal(err)
	}
	return chats, nil
}

// Messages returns a conversation's messages.
func (s *ChatService) Messages(ctx context.Context, chatID string) ([]domain.Message, error) {
	return fetchMessages(ctx, s.api, s.endpoints, chatID)
}

// Send posts a message to a conversation.
func (s *ChatService) Send(ctx context.Context, input MessageInput) (*domain.Message, error) {
	input.Text = strings.TrimSpace(input.Text)
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}
	env, err := s.api.Post(ctx, s.endpoints.SendMessage(), input)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not send message"); err != nil {
		return nil, err
	}
	var msg domain.Message
	if err := env.DecodeData(&msg); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &msg, nil
}

// Initiate opens a conversation between two users, returning the existing
// one if the backend already has it.
func (s *ChatService) Initiate(ctx context.Context, input InitiateInput) (*domain.Chat, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}
	env, err := s.api.Post(ctx, s.endpoints.InitiateChat(), input)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not initiate chat"); err != nil {
		return nil, err
	}
	var chat domain.Chat
	if err := env.DecodeData(&chat); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &chat, nil
}

// Watch polls a conversation and hands each successful fetch to fn. Whatever
// arrives last overwrites what came before; there is no merging. Transient
// failures, including an open circuit, are logged and the loop keeps going.
// Watch returns when the context ends or the session expires.
func (s *ChatService) Watch(ctx context.Context, chatID string, interval time.Duration, fn func([]domain.Message)) error {
	if strings.TrimSpace(chatID) == "" {
		return apperrors.InvalidInput("chat id is required")
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		msgs, err := fetchMessages(ctx, s.poll, s.endpoints, chatID)
		switch {
		case err == nil:
			fn(msgs)
		case errors.Is(err, apperrors.ErrSessionExpired):
			return err
		case errors.Is(err, httpclient.ErrCircuitOpen):
			s.logger.DebugContext(ctx, "chat poll skipped, circuit open",
				slog.String("chat_id", chatID))
		default:
			s.logger.WarnContext(ctx, "chat poll failed",
				slog.String("chat_id", chatID),
				slog.String("error", err.Error()))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func fetchMessages(ctx context.Context, client *api.Client, endpoints *api.Endpoints, chatID string) ([]domain.Message, error) {
	if strings.TrimSpace(chatID) == "" {
		return nil, apperrors.InvalidInput("chat id is required")
	}
	env, err := client.Get(ctx, endpoints.ChatMessages(chatID), nil)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not load messages"); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, nil
	}
	var msgs []domain.Message
	if err := env.DecodeData(&msgs); err != nil {
		return nil, apperrors.Internal(err)
	}
	return msgs, nil
}
