package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/repositories"
	"github.com/yigit/campusconnect/internal/pkg/helpers"
)

const (
	dashboardRecentRequests    = 3
	dashboardRecentConfessions = 2
	homeRecentConfessions      = 2
	homePreviewLength          = 100
)

// DashboardService builds the admin overview and the student home summary
type DashboardService interface {
	Overview(ctx context.Context) (*dto.DashboardResponse, error)
	Home(ctx context.Context, actor models.Actor) (*dto.HomeResponse, error)
}

type dashboardServiceImpl struct {
	userRepo         *repositories.UserRepository
	clubRepo         *repositories.ClubRepository
	confessionRepo   *repositories.ConfessionRepository
	announcementRepo *repositories.AnnouncementRepository
	logger           zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	userRepo *repositories.UserRepository,
	clubRepo *repositories.ClubRepository,
	confessionRepo *repositories.ConfessionRepository,
	announcementRepo *repositories.AnnouncementRepository,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardServiceImpl{
		userRepo:         userRepo,
		clubRepo:         clubRepo,
		confessionRepo:   confessionRepo,
		announcementRepo: announcementRepo,
		logger:           logger,
	}
}

// Overview counts the portal's main collections and lists the newest items
// waiting on an administrator.
func (s *dashboardServiceImpl) Overview(ctx context.Context) (*dto.DashboardResponse, error) {
	students, err := s.userRepo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	clubs, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.clubRepo.Requests(ctx, repositories.RequestFilter{Status: models.ClubRequestPending})
	if err != nil {
		return nil, err
	}
	confessions, err := s.confessionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	clubNames := make(map[string]string, len(clubs))
	for _, c := range clubs {
		clubNames[c.ID] = c.Name
	}
	recent := make([]dto.ClubRequestResponse, 0, dashboardRecentRequests)
	for _, r := range helpers.LastN(pending, dashboardRecentRequests) {
		recent = append(recent, dto.ClubRequestResponse{
			ID:           r.ID,
			StudentEmail: r.StudentEmail,
			ClubID:       r.ClubID,
			ClubName:     clubNames[r.ClubID],
			Status:       string(r.Status),
			RequestDate:  r.RequestDate,
		})
	}

	unapproved := make([]models.Confession, 0)
	for _, c := range confessions {
		if !c.IsApproved {
			unapproved = append(unapproved, c)
		}
	}
	// categories only; the moderation queue is where text is read
	categories := make([]string, 0, dashboardRecentConfessions)
	for _, c := range helpers.LastN(unapproved, dashboardRecentConfessions) {
		categories = append(categories, c.Category)
	}

	return &dto.DashboardResponse{
		StudentCount:               len(students),
		AnnouncementCount:          len(announcements),
		ClubCount:                  len(clubs),
		PendingClubRequests:        len(pending),
		PendingConfessions:         len(unapproved),
		RecentClubRequests:         recent,
		RecentConfessionCategories: categories,
	}, nil
}

// Home summarizes the portal for one student: their club count, the campus
// totals and a preview of the newest approved confessions.
func (s *dashboardServiceImpl) Home(ctx context.Context, actor models.Actor) (*dto.HomeResponse, error) {
	joined, err := s.clubRepo.ClubsFor(ctx, actor.Email)
	if err != nil {
		return nil, err
	}
	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	students, err := s.userRepo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	confessions, err := s.confessionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	approved := make([]models.Confession, 0, len(confessions))
	for _, c := range confessions {
		if c.IsApproved {
			approved = append(approved, c)
		}
	}
	recent := make([]dto.HomeConfession, 0, homeRecentConfessions)
	for _, c := range helpers.LastN(approved, homeRecentConfessions) {
		recent = append(recent, dto.HomeConfession{
			ID:           c.ID,
			Category:     c.Category,
			Text:         helpers.Truncate(c.Text, homePreviewLength),
			AnonymousID:  c.AnonymousID,
			LikeCount:    len(c.Likes),
			CommentCount: len(c.Comments),
		})
	}

	return &dto.HomeResponse{
		ClubsJoined:       len(joined),
		AnnouncementCount: len(announcements),
		CampusMembers:     len(students),
		ConfessionCount:   len(approved),
		RecentConfessions: recent,
	}, nil
}
