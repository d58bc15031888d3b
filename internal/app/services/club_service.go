package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/repositories"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

// ClubService drives club browsing and the join-request workflow
type ClubService interface {
	ListClubs(ctx context.Context, actor models.Actor) ([]dto.ClubResponse, error)
	GetClub(ctx context.Context, actor models.Actor, clubID string) (*dto.ClubResponse, error)
	MyClubs(ctx context.Context, actor models.Actor) ([]dto.ClubResponse, error)
	RequestJoin(ctx context.Context, actor models.Actor, clubID string) (*dto.JoinClubResponse, error)
	ListRequests(ctx context.Context, filter *dto.ClubRequestFilter) ([]dto.ClubRequestResponse, error)
	ApproveRequest(ctx context.Context, requestID string) (*dto.ClubRequestResponse, error)
}

type clubServiceImpl struct {
	clubRepo *repositories.ClubRepository
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewClubService creates a new ClubService
func NewClubService(clubRepo *repositories.ClubRepository, userRepo *repositories.UserRepository, logger zerolog.Logger) ClubService {
	return &clubServiceImpl{
		clubRepo: clubRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListClubs returns every club with the caller's membership status.
func (s *clubServiceImpl) ListClubs(ctx context.Context, actor models.Actor) ([]dto.ClubResponse, error) {
	clubs, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return clubResponses(clubs, actor.Email), nil
}

// GetClub returns one club with the caller's membership status.
func (s *clubServiceImpl) GetClub(ctx context.Context, actor models.Actor, clubID string) (*dto.ClubResponse, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewClubResponse(club, actor.Email)
	return &resp, nil
}

// MyClubs returns the clubs the caller belongs to.
func (s *clubServiceImpl) MyClubs(ctx context.Context, actor models.Actor) ([]dto.ClubResponse, error) {
	clubs, err := s.clubRepo.ClubsFor(ctx, actor.Email)
	if err != nil {
		return nil, err
	}
	return clubResponses(clubs, actor.Email), nil
}

// RequestJoin files a join request for the caller. A repeat request is not
// an error; Requested is false and Status tells the caller where they stand.
func (s *clubServiceImpl) RequestJoin(ctx context.Context, actor models.Actor, clubID string) (*dto.JoinClubResponse, error) {
	if actor.IsAdmin() {
		return nil, apperrors.NewForbiddenError("Only students can join clubs")
	}

	inserted, err := s.clubRepo.RequestJoin(ctx, actor.Email, clubID)
	if err != nil {
		return nil, err
	}

	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		// an unknown club surfaces here
		return nil, err
	}

	if !inserted {
		s.logger.Debug().Str("club", clubID).Str("student", actor.Email).Msg("Join request ignored")
	}
	return &dto.JoinClubResponse{
		ClubID:    clubID,
		Requested: inserted,
		Status:    string(club.StatusFor(actor.Email)),
	}, nil
}

// ListRequests returns join requests, newest last, optionally filtered.
func (s *clubServiceImpl) ListRequests(ctx context.Context, filter *dto.ClubRequestFilter) ([]dto.ClubRequestResponse, error) {
	f := repositories.RequestFilter{}
	if filter != nil {
		f.Status = models.ClubRequestStatus(filter.Status)
		f.ClubID = filter.ClubID
	}
	reqs, err := s.clubRepo.Requests(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, reqs)
}

// ApproveRequest admits the student named by a logged request.
func (s *clubServiceImpl) ApproveRequest(ctx context.Context, requestID string) (*dto.ClubRequestResponse, error) {
	req, err := s.clubRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	ok, err := s.clubRepo.ApproveRequest(ctx, req.ID, req.ClubID, req.StudentEmail)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrClubNotFound, "Club for this request no longer exists")
	}

	updated, err := s.clubRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	out, err := s.enrich(ctx, []models.ClubRequest{*updated})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// enrich attaches student and club names. Lookups that fail leave the
// name empty rather than dropping the request.
func (s *clubServiceImpl) enrich(ctx context.Context, reqs []models.ClubRequest) ([]dto.ClubRequestResponse, error) {
	clubs, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	clubNames := make(map[string]string, len(clubs))
	for _, c := range clubs {
		clubNames[c.ID] = c.Name
	}

	studentNames := make(map[string]string)
	out := make([]dto.ClubRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		name, seen := studentNames[r.StudentEmail]
		if !seen {
			if u, err := s.userRepo.GetByEmail(ctx, r.StudentEmail); err == nil {
				name = u.Name
			}
			studentNames[r.StudentEmail] = name
		}
		out = append(out, dto.ClubRequestResponse{
			ID:            r.ID,
			StudentEmail:  r.StudentEmail,
			StudentName:   name,
			ClubID:        r.ClubID,
			ClubName:      clubNames[r.ClubID],
			Status:        string(r.Status),
			RequestDate:   r.RequestDate,
			ProcessedDate: r.ProcessedDate,
		})
	}
	return out, nil
}

func clubResponses(clubs []models.Club, email string) []dto.ClubResponse {
	out := make([]dto.ClubResponse, 0, len(clubs))
	for i := range clubs {
		out = append(out, dto.NewClubResponse(&clubs[i], email))
	}
	return out
}
