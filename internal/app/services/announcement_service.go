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

// AnnouncementService handles admin broadcasts
type AnnouncementService interface {
	List(ctx context.Context, filter *dto.AnnouncementFilter) ([]models.Announcement, error)
	Create(ctx context.Context, actor models.Actor, req *dto.CreateAnnouncementRequest) (*models.Announcement, error)
	Delete(ctx context.Context, announcementID string) error
}

type announcementServiceImpl struct {
	announcementRepo *repositories.AnnouncementRepository
	logger           zerolog.Logger
	now              func() time.Time
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(announcementRepo *repositories.AnnouncementRepository, logger zerolog.Logger) AnnouncementService {
	return &announcementServiceImpl{
		announcementRepo: announcementRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// List returns announcements newest last. ActiveOnly hides expired ones.
func (s *announcementServiceImpl) List(ctx context.Context, filter *dto.AnnouncementFilter) ([]models.Announcement, error) {
	all, err := s.announcementRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil || !filter.ActiveOnly {
		return all, nil
	}

	now := s.now()
	active := make([]models.Announcement, 0, len(all))
	for i := range all {
		if !all[i].Expired(now) {
			active = append(active, all[i])
		}
	}
	return active, nil
}

// Create publishes an announcement signed with the caller's name.
func (s *announcementServiceImpl) Create(ctx context.Context, actor models.Actor, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.NewForbiddenError("Only administrators can post announcements")
	}

	author := actor.Name
	if author == "" {
		author = actor.Email
	}
	a := &models.Announcement{
		ID:          models.NewID(),
		Title:       strings.TrimSpace(req.Title),
		Message:     strings.TrimSpace(req.Message),
		Category:    req.Category,
		Priority:    models.Priority(req.Priority),
		Author:      author,
		CreatedDate: s.now(),
		ExpiryDate:  req.ExpiryDate,
	}
	if err := s.announcementRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info().Str("announcement", a.ID).Str("priority", string(a.Priority)).Msg("Announcement posted")
	return a, nil
}

// Delete is not supported; announcements are append-only.
func (s *announcementServiceImpl) Delete(ctx context.Context, announcementID string) error {
	s.logger.Debug().Str("announcement", announcementID).Msg("Announcement delete requested")
	return apperrors.NewCustomError(apperrors.ErrNotImplemented, "Deleting announcements is not supported yet")
}
