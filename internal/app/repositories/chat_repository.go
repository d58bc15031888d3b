package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
	"github.com/yigit/campusconnect/internal/store"
)

type chatDoc = map[string]*models.Chat

// ChatRepository owns the chats collection.
type ChatRepository struct {
	chats  *store.Collection[chatDoc]
	now    func() time.Time
	logger zerolog.Logger
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(s *store.Store, logger zerolog.Logger) *ChatRepository {
	return &ChatRepository{
		chats:  store.NewCollection(s, store.Chats, func() chatDoc { return chatDoc{} }),
		now:    time.Now,
		logger: logger.With().Str("repository", "chats").Logger(),
	}
}

// ChatKey derives the chat id for two emails. Emails are canonicalized and
// sorted, so the key does not depend on argument order or case. Each part
// has "%" and "_" escaped, so distinct pairs never share a key.
func ChatKey(a, b string) string {
	x, y := chatKeyPart(a), chatKeyPart(b)
	if y < x {
		x, y = y, x
	}
	return "chat_" + x + "_" + y
}

var chatKeyEscaper = strings.NewReplacer("%", "%25", "_", "%5F")

func chatKeyPart(email string) string {
	return chatKeyEscaper.Replace(models.CanonicalEmail(email))
}

// Create returns the id of the chat between a and b, creating it on first use.
// An existing chat stored under the key with other participants is refused.
func (r *ChatRepository) Create(ctx context.Context, a, b string) (string, error) {
	id := ChatKey(a, b)
	err := r.chats.Update(ctx, func(doc *chatDoc) (bool, error) {
		if c, ok := (*doc)[id]; ok && c != nil {
			if !c.HasParticipant(a) || !c.HasParticipant(b) {
				r.logger.Error().Str("chat", id).Strs("participants", c.Participants[:]).Msg("chat key held by other participants")
				return false, apperrors.NewConflictError("Chat id is already in use by other participants")
			}
			return false, nil
		}
		(*doc)[id] = &models.Chat{
			ID:           id,
			Participants: [2]string{a, b},
			Messages:     []models.Message{},
			CreatedDate:  r.now(),
		}
		r.logger.Debug().Str("chat", id).Msg("chat created")
		return true, nil
	})
	if err != nil {
		return "", fmt.Errorf("create chat: %w", err)
	}
	return id, nil
}

// GetByID returns one chat or apperrors.ErrChatNotFound.
func (r *ChatRepository) GetByID(ctx context.Context, chatID string) (*models.Chat, error) {
	doc, err := r.chats.Load(ctx)
	if err = readable(err); err != nil {
		return nil, fmt.Errorf("load chats: %w", err)
	}
	c, ok := doc[chatID]
	if !ok || c == nil {
		return nil, apperrors.ErrChatNotFound
	}
	c.ID = chatID
	return c, nil
}

// AppendMessage adds a message to the end of a chat. It returns false when
// the chat does not exist.
func (r *ChatRepository) AppendMessage(ctx context.Context, chatID, sender, text string) (*models.Message, bool, error) {
	var msg *models.Message
	err := r.chats.Update(ctx, func(doc *chatDoc) (bool, error) {
		c, ok := (*doc)[chatID]
		if !ok || c == nil {
			return false, nil
		}
		m := models.Message{
			ID:        models.NewID(),
			Sender:    sender,
			Text:      text,
			Timestamp: r.now(),
		}
		c.Messages = append(c.Messages, m)
		msg = &m
		return true, nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("append message: %w", err)
	}
	return msg, msg != nil, nil
}

// Messages returns a chat's messages in order; an unknown chat has none.
func (r *ChatRepository) Messages(ctx context.Context, chatID string) ([]models.Message, error) {
	c, err := r.GetByID(ctx, chatID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrChatNotFound) {
			return []models.Message{}, nil
		}
		return nil, err
	}
	if c.Messages == nil {
		return []models.Message{}, nil
	}
	return c.Messages, nil
}

// ListFor returns the chats email takes part in, most recently active first.
func (r *ChatRepository) ListFor(ctx context.Context, email string) ([]models.Chat, error) {
	doc, err := r.chats.Load(ctx)
	if err = readable(err); err != nil {
		return nil, fmt.Errorf("load chats: %w", err)
	}

	out := make([]models.Chat, 0)
	for id, c := range doc {
		if c == nil || !c.HasParticipant(email) {
			continue
		}
		c.ID = id
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		return lastActivity(&out[i]).After(lastActivity(&out[j]))
	})
	return out, nil
}

func lastActivity(c *models.Chat) time.Time {
	if n := len(c.Messages); n > 0 {
		return c.Messages[n-1].Timestamp
	}
	return c.CreatedDate
}

// Seed writes an empty chats collection if it does not exist yet.
func (r *ChatRepository) Seed(ctx context.Context) (bool, error) {
	return r.chats.SeedIfAbsent(ctx, chatDoc{})
}
