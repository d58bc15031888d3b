package repositories

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/store"
)

type announcementDoc = []models.Announcement

// AnnouncementRepository owns the append-only announcements collection.
type AnnouncementRepository struct {
	announcements *store.Collection[announcementDoc]
	logger        zerolog.Logger
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(s *store.Store, logger zerolog.Logger) *AnnouncementRepository {
	return &AnnouncementRepository{
		announcements: store.NewCollection(s, store.Announcements, func() announcementDoc { return announcementDoc{} }),
		logger:        logger.With().Str("repository", "announcements").Logger(),
	}
}

// Create appends an announcement.
func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) error {
	err := r.announcements.Update(ctx, func(doc *announcementDoc) (bool, error) {
		*doc = append(*doc, *a)
		return true, nil
	})
	if err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}
	return nil
}

// List returns announcements in insertion order.
func (r *AnnouncementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	doc, err := r.announcements.Load(ctx)
	if err = readable(err); err != nil {
		return nil, fmt.Errorf("load announcements: %w", err)
	}
	return doc, nil
}

// Seed writes the sample announcements if the collection does not exist yet.
func (r *AnnouncementRepository) Seed(ctx context.Context, items []models.Announcement) (bool, error) {
	doc := make(announcementDoc, len(items))
	copy(doc, items)
	return r.announcements.SeedIfAbsent(ctx, doc)
}
