package repositories

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/campusconnect/internal/store"
)

// Options carries behavior switches that repositories read from config.
type Options struct {
	DedupeLikes bool
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	ClubRepository         *ClubRepository
	ChatRepository         *ChatRepository
	CallRepository         *CallRepository
	ConfessionRepository   *ConfessionRepository
	AnnouncementRepository *AnnouncementRepository
}

// NewRepositories initializes all repositories over one store.
func NewRepositories(s *store.Store, opts Options, logger zerolog.Logger) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(s, logger),
		ClubRepository:         NewClubRepository(s, logger),
		ChatRepository:         NewChatRepository(s, logger),
		CallRepository:         NewCallRepository(s, logger),
		ConfessionRepository:   NewConfessionRepository(s, opts.DedupeLikes, logger),
		AnnouncementRepository: NewAnnouncementRepository(s, logger),
	}
}

// readable drops ErrCorruptCollection so reads degrade to the empty value
// the store already returned. The store logs the corruption.
func readable(err error) error {
	if errors.Is(err, store.ErrCorruptCollection) {
		return nil
	}
	return err
}
