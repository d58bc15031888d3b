package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/repositories"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

// ConfessionService runs the anonymous confession board and its moderation
type ConfessionService interface {
	// Feed returns approved confessions. Students get the anonymized
	// projection; administrators get the stored records.
	Feed(ctx context.Context, actor models.Actor) (interface{}, error)
	ModerationQueue(ctx context.Context) ([]models.Confession, error)
	Create(ctx context.Context, actor models.Actor, req *dto.CreateConfessionRequest) (interface{}, error)
	Like(ctx context.Context, actor models.Actor, confessionID string) (*dto.LikeResponse, error)
	Comment(ctx context.Context, actor models.Actor, confessionID string, req *dto.CommentRequest) ([]models.StudentComment, error)
	Approve(ctx context.Context, confessionID string) (*models.Confession, error)
	Reject(ctx context.Context, confessionID string) error
	Delete(ctx context.Context, confessionID string) error
}

type confessionServiceImpl struct {
	confessionRepo *repositories.ConfessionRepository
	logger         zerolog.Logger
	now            func() time.Time
}

// NewConfessionService creates a new ConfessionService
func NewConfessionService(confessionRepo *repositories.ConfessionRepository, logger zerolog.Logger) ConfessionService {
	return &confessionServiceImpl{
		confessionRepo: confessionRepo,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *confessionServiceImpl) Feed(ctx context.Context, actor models.Actor) (interface{}, error) {
	all, err := s.confessionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	approved := make([]models.Confession, 0, len(all))
	for _, c := range all {
		if c.IsApproved {
			approved = append(approved, c)
		}
	}
	return s.project(actor, approved), nil
}

// ModerationQueue returns every stored confession, approved or not.
func (s *confessionServiceImpl) ModerationQueue(ctx context.Context) ([]models.Confession, error) {
	all, err := s.confessionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return models.ProjectForAdmin(all), nil
}

// Create posts a confession. It is returned in the caller's projection.
func (s *confessionServiceImpl) Create(ctx context.Context, actor models.Actor, req *dto.CreateConfessionRequest) (interface{}, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperrors.NewBadRequestError("Confession text is required")
	}
	c, err := s.confessionRepo.Create(ctx, text, req.Category, actor.Email, actor.Role)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return c, nil
	}
	return models.ProjectForStudents([]models.Confession{*c})[0], nil
}

// Like adds the caller's like. With like deduplication on, a repeat like
// reports Liked false and leaves the count unchanged.
func (s *confessionServiceImpl) Like(ctx context.Context, actor models.Actor, confessionID string) (*dto.LikeResponse, error) {
	if _, err := s.visible(ctx, actor, confessionID); err != nil {
		return nil, err
	}

	liked, err := s.confessionRepo.Like(ctx, confessionID, actor.Email)
	if err != nil {
		return nil, err
	}
	c, err := s.confessionRepo.GetByID(ctx, confessionID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeResponse{Liked: liked, LikeCount: len(c.Likes)}, nil
}

// Comment adds the caller's comment and returns the anonymized thread.
func (s *confessionServiceImpl) Comment(ctx context.Context, actor models.Actor, confessionID string, req *dto.CommentRequest) ([]models.StudentComment, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperrors.NewBadRequestError("Comment text is required")
	}
	if _, err := s.visible(ctx, actor, confessionID); err != nil {
		return nil, err
	}

	_, ok, err := s.confessionRepo.Comment(ctx, confessionID, text, s.now(), actor.Email)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrConfessionNotFound
	}
	c, err := s.confessionRepo.GetByID(ctx, confessionID)
	if err != nil {
		return nil, err
	}
	return models.ProjectCommentsForStudents(c), nil
}

// Approve publishes a confession to the student feed.
func (s *confessionServiceImpl) Approve(ctx context.Context, confessionID string) (*models.Confession, error) {
	ok, err := s.confessionRepo.SetApproval(ctx, confessionID, true)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrConfessionNotFound
	}
	s.logger.Info().Str("confession", confessionID).Msg("Confession approved")
	return s.confessionRepo.GetByID(ctx, confessionID)
}

// Reject deletes a confession that is still awaiting moderation.
func (s *confessionServiceImpl) Reject(ctx context.Context, confessionID string) error {
	c, err := s.confessionRepo.GetByID(ctx, confessionID)
	if err != nil {
		return err
	}
	if c.IsApproved {
		return apperrors.NewCustomError(apperrors.ErrAlreadyModerated, "Approved confessions are removed with delete, not reject")
	}

	ok, err := s.confessionRepo.Reject(ctx, confessionID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrConfessionNotFound
	}
	return nil
}

// Delete removes any confession.
func (s *confessionServiceImpl) Delete(ctx context.Context, confessionID string) error {
	ok, err := s.confessionRepo.Delete(ctx, confessionID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrConfessionNotFound
	}
	return nil
}

// visible loads a confession the caller may interact with. Students only
// see approved confessions.
func (s *confessionServiceImpl) visible(ctx context.Context, actor models.Actor, confessionID string) (*models.Confession, error) {
	c, err := s.confessionRepo.GetByID(ctx, confessionID)
	if err != nil {
		return nil, err
	}
	if !c.IsApproved && !actor.IsAdmin() {
		return nil, apperrors.ErrConfessionNotFound
	}
	return c, nil
}

func (s *confessionServiceImpl) project(actor models.Actor, confessions []models.Confession) interface{} {
	if actor.IsAdmin() {
		return models.ProjectForAdmin(confessions)
	}
	return models.ProjectForStudents(confessions)
}
