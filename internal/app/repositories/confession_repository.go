package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
	"github.com/yigit/campusconnect/internal/store"
)

type confessionDoc = []models.Confession

// ConfessionRepository owns the confessions collection.
type ConfessionRepository struct {
	confessions *store.Collection[confessionDoc]
	dedupeLikes bool
	now         func() time.Time
	logger      zerolog.Logger
}

// NewConfessionRepository creates a new ConfessionRepository. With
// dedupeLikes set, a second like from the same user is a no-op.
func NewConfessionRepository(s *store.Store, dedupeLikes bool, logger zerolog.Logger) *ConfessionRepository {
	return &ConfessionRepository{
		confessions: store.NewCollection(s, store.Confessions, func() confessionDoc { return confessionDoc{} }),
		dedupeLikes: dedupeLikes,
		now:         time.Now,
		logger:      logger.With().Str("repository", "confessions").Logger(),
	}
}

// Create stores a confession. Admin-authored confessions start approved;
// everyone else's wait for moderation.
func (r *ConfessionRepository) Create(ctx context.Context, text, category, authorEmail string, authorRole models.RoleType) (*models.Confession, error) {
	c := models.Confession{
		ID:          models.NewID(),
		Text:        text,
		Category:    category,
		UserEmail:   authorEmail,
		AnonymousID: models.NewAnonymousID(),
		CreatedDate: r.now(),
		IsApproved:  authorRole == models.RoleAdmin,
		Likes:       []models.Like{},
		Comments:    []models.Comment{},
	}
	err := r.confessions.Update(ctx, func(doc *confessionDoc) (bool, error) {
		*doc = append(*doc, c)
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("create confession: %w", err)
	}
	r.logger.Info().Str("confession", c.ID).Bool("approved", c.IsApproved).Msg("confession created")
	return &c, nil
}

// List returns the raw stored confessions in insertion order.
func (r *ConfessionRepository) List(ctx context.Context) ([]models.Confession, error) {
	doc, err := r.confessions.Load(ctx)
	if err = readable(err); err != nil {
		return nil, fmt.Errorf("load confessions: %w", err)
	}
	return doc, nil
}

// GetByID returns one confession or apperrors.ErrConfessionNotFound.
func (r *ConfessionRepository) GetByID(ctx context.Context, id string) (*models.Confession, error) {
	doc, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc {
		if doc[i].ID == id {
			return &doc[i], nil
		}
	}
	return nil, apperrors.ErrConfessionNotFound
}

// Like appends a like with a fresh pseudonym. It returns false when the
// confession does not exist, or when likes are deduplicated and actorEmail
// already liked it.
func (r *ConfessionRepository) Like(ctx context.Context, id, actorEmail string) (bool, error) {
	liked := false
	err := r.mutate(ctx, id, func(c *models.Confession) bool {
		if r.dedupeLikes && c.LikedBy(actorEmail) {
			return false
		}
		c.Likes = append(c.Likes, models.Like{
			AnonymousID: models.NewAnonymousID(),
			UserEmail:   actorEmail,
		})
		liked = true
		return true
	})
	if err != nil {
		return false, fmt.Errorf("like confession %s: %w", id, err)
	}
	return liked, nil
}

// Comment appends a comment with a fresh pseudonym. It returns false when
// the confession does not exist.
func (r *ConfessionRepository) Comment(ctx context.Context, id, text string, createdDate time.Time, actorEmail string) (*models.Comment, bool, error) {
	var added *models.Comment
	err := r.mutate(ctx, id, func(c *models.Confession) bool {
		cm := models.Comment{
			ID:          models.NewID(),
			Text:        text,
			CreatedDate: createdDate,
			AnonymousID: models.NewAnonymousID(),
			UserEmail:   actorEmail,
		}
		c.Comments = append(c.Comments, cm)
		added = &cm
		return true
	})
	if err != nil {
		return nil, false, fmt.Errorf("comment on confession %s: %w", id, err)
	}
	return added, added != nil, nil
}

// SetApproval sets the moderation flag. It returns false when the
// confession does not exist.
func (r *ConfessionRepository) SetApproval(ctx context.Context, id string, approved bool) (bool, error) {
	found := false
	err := r.mutate(ctx, id, func(c *models.Confession) bool {
		found = true
		if c.IsApproved == approved {
			return false
		}
		c.IsApproved = approved
		return true
	})
	if err != nil {
		return false, fmt.Errorf("set approval %s: %w", id, err)
	}
	return found, nil
}

// Delete removes a confession outright. It returns false when the
// confession does not exist.
func (r *ConfessionRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.deleteWhere(ctx, id, func(*models.Confession) bool { return true })
}

// Reject deletes a confession that has not been approved. It returns false
// when no unapproved confession has that id.
func (r *ConfessionRepository) Reject(ctx context.Context, id string) (bool, error) {
	return r.deleteWhere(ctx, id, func(c *models.Confession) bool { return !c.IsApproved })
}

func (r *ConfessionRepository) deleteWhere(ctx context.Context, id string, allowed func(*models.Confession) bool) (bool, error) {
	removed := false
	err := r.confessions.Update(ctx, func(doc *confessionDoc) (bool, error) {
		for i := range *doc {
			if (*doc)[i].ID != id {
				continue
			}
			if !allowed(&(*doc)[i]) {
				return false, nil
			}
			*doc = append((*doc)[:i], (*doc)[i+1:]...)
			removed = true
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return false, fmt.Errorf("delete confession %s: %w", id, err)
	}
	if removed {
		r.logger.Info().Str("confession", id).Msg("confession removed")
	}
	return removed, nil
}

// mutate runs fn on the confession with the given id; fn reports whether it
// changed anything.
func (r *ConfessionRepository) mutate(ctx context.Context, id string, fn func(*models.Confession) bool) error {
	return r.confessions.Update(ctx, func(doc *confessionDoc) (bool, error) {
		for i := range *doc {
			if (*doc)[i].ID == id {
				return fn(&(*doc)[i]), nil
			}
		}
		return false, nil
	})
}

// Seed writes an empty confessions collection if it does not exist yet.
func (r *ConfessionRepository) Seed(ctx context.Context) (bool, error) {
	return r.confessions.SeedIfAbsent(ctx, confessionDoc{})
}
