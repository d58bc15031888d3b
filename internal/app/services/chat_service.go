package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/repositories"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

// ChatService handles direct messaging between users
type ChatService interface {
	CreateChat(ctx context.Context, actor models.Actor, req *dto.CreateChatRequest) (*dto.ChatResponse, error)
	ListChats(ctx context.Context, actor models.Actor) ([]dto.ChatResponse, error)
	GetMessages(ctx context.Context, actor models.Actor, chatID string) ([]models.Message, error)
	SendMessage(ctx context.Context, actor models.Actor, chatID string, req *dto.SendMessageRequest) (*models.Message, error)
}

type chatServiceImpl struct {
	chatRepo *repositories.ChatRepository
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewChatService creates a new ChatService
func NewChatService(chatRepo *repositories.ChatRepository, userRepo *repositories.UserRepository, logger zerolog.Logger) ChatService {
	return &chatServiceImpl{
		chatRepo: chatRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateChat opens the chat between the caller and another account, or
// returns the existing one.
func (s *chatServiceImpl) CreateChat(ctx context.Context, actor models.Actor, req *dto.CreateChatRequest) (*dto.ChatResponse, error) {
	if models.SameEmail(req.ParticipantEmail, actor.Email) {
		return nil, apperrors.NewBadRequestError("Cannot start a chat with yourself")
	}
	other, err := s.userRepo.GetByEmail(ctx, req.ParticipantEmail)
	if err != nil {
		return nil, err
	}

	id, err := s.chatRepo.Create(ctx, models.CanonicalEmail(actor.Email), models.CanonicalEmail(other.Email))
	if err != nil {
		return nil, err
	}
	chat, err := s.chatRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewChatResponse(chat, actor.Email)
	return &resp, nil
}

// ListChats returns the caller's chats, most recently active first.
func (s *chatServiceImpl) ListChats(ctx context.Context, actor models.Actor) ([]dto.ChatResponse, error) {
	chats, err := s.chatRepo.ListFor(ctx, actor.Email)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChatResponse, 0, len(chats))
	for i := range chats {
		out = append(out, dto.NewChatResponse(&chats[i], actor.Email))
	}
	return out, nil
}

// GetMessages returns a chat's history to one of its participants.
func (s *chatServiceImpl) GetMessages(ctx context.Context, actor models.Actor, chatID string) ([]models.Message, error) {
	if _, err := s.participantChat(ctx, actor, chatID); err != nil {
		return nil, err
	}
	return s.chatRepo.Messages(ctx, chatID)
}

// SendMessage appends the caller's message to a chat they take part in.
func (s *chatServiceImpl) SendMessage(ctx context.Context, actor models.Actor, chatID string, req *dto.SendMessageRequest) (*models.Message, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperrors.NewBadRequestError("Message text is required")
	}
	if _, err := s.participantChat(ctx, actor, chatID); err != nil {
		return nil, err
	}

	msg, ok, err := s.chatRepo.AppendMessage(ctx, chatID, actor.Email, text)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrChatNotFound
	}
	return msg, nil
}

func (s *chatServiceImpl) participantChat(ctx context.Context, actor models.Actor, chatID string) (*models.Chat, error) {
	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(actor.Email) {
		s.logger.Warn().Str("chat", chatID).Str("email", actor.Email).Msg("Chat access by non-participant")
		return nil, apperrors.ErrNotParticipant
	}
	return chat, nil
}
