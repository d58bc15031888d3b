package repositories

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
	"github.com/yigit/campusconnect/internal/store"
)

type (
	clubDoc    = map[string]*models.Club
	requestDoc = []models.ClubRequest
)

// ClubRepository owns the clubs collection and the club_requests log.
// Club.PendingRequests and the log are only ever changed together here,
// with the clubs lock taken before the requests lock.
type ClubRepository struct {
	clubs    *store.Collection[clubDoc]
	requests *store.Collection[requestDoc]
	now      func() time.Time
	logger   zerolog.Logger
}

// NewClubRepository creates a new ClubRepository
func NewClubRepository(s *store.Store, logger zerolog.Logger) *ClubRepository {
	return &ClubRepository{
		clubs:    store.NewCollection(s, store.Clubs, func() clubDoc { return clubDoc{} }),
		requests: store.NewCollection(s, store.ClubRequests, func() requestDoc { return requestDoc{} }),
		now:      time.Now,
		logger:   logger.With().Str("repository", "clubs").Logger(),
	}
}

// List returns every club ordered by id.
func (r *ClubRepository) List(ctx context.Context) ([]models.Club, error) {
	doc, err := r.clubs.Load(ctx)
	if err = readable(err); err != nil {
		return nil, fmt.Errorf("load clubs: %w", err)
	}

	out := make([]models.Club, 0, len(doc))
	for id, c := range doc {
		if c == nil {
			continue
		}
		c.ID = id
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetByID returns one club or apperrors.ErrClubNotFound.
func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (*models.Club, error) {
	doc, err := r.clubs.Load(ctx)
	if err = readable(err); err != nil {
		return nil, fmt.Errorf("load clubs: %w", err)
	}
	c, ok := doc[clubID]
	if !ok || c == nil {
		return nil, apperrors.ErrClubNotFound
	}
	c.ID = clubID
	return c, nil
}

// ClubsFor returns the clubs email is a member of.
func (r *ClubRepository) ClubsFor(ctx context.Context, email string) ([]models.Club, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Club, 0)
	for _, c := range all {
		if c.IsMember(email) {
			out = append(out, c)
		}
	}
	return out, nil
}

// RequestJoin records a join intent. It returns false without writing when
// the club is unknown, or the student is already pending or a member.
// On success the email is added to the club's pending list and a pending
// request is appended to the log.
func (r *ClubRepository) RequestJoin(ctx context.Context, studentEmail, clubID string) (bool, error) {
	inserted := false
	loggedID := ""

	err := r.clubs.Update(ctx, func(doc *clubDoc) (bool, error) {
		club, ok := (*doc)[clubID]
		if !ok || club == nil {
			return false, nil
		}
		if club.IsPending(studentEmail) || club.IsMember(studentEmail) {
			return false, nil
		}

		id := models.NewID()
		err := r.requests.Update(ctx, func(log *requestDoc) (bool, error) {
			*log = append(*log, models.ClubRequest{
				ID:           id,
				StudentEmail: studentEmail,
				ClubID:       clubID,
				Status:       models.ClubRequestPending,
				RequestDate:  r.now(),
			})
			return true, nil
		})
		if err != nil {
			return false, err
		}
		loggedID = id

		club.PendingRequests = append(club.PendingRequests, studentEmail)
		inserted = true
		return true, nil
	})
	if err != nil {
		if loggedID != "" {
			r.restoreLog(ctx, loggedID, func(log *requestDoc) bool {
				n := len(*log)
				*log = slices.DeleteFunc(*log, func(req models.ClubRequest) bool { return req.ID == loggedID })
				return len(*log) != n
			})
		}
		return false, fmt.Errorf("request join %s: %w", clubID, err)
	}

	if inserted {
		r.logger.Info().Str("club", clubID).Str("student", studentEmail).Msg("join request recorded")
	}
	return inserted, nil
}

// ApproveRequest moves studentEmail from the club's pending list into its
// members and closes the matching request. It returns false only when the
// club is unknown. A request id missing from the log is logged and does not
// block the membership change.
func (r *ClubRepository) ApproveRequest(ctx context.Context, requestID, clubID, studentEmail string) (bool, error) {
	approved := false
	closed := false

	err := r.clubs.Update(ctx, func(doc *clubDoc) (bool, error) {
		club, ok := (*doc)[clubID]
		if !ok || club == nil {
			return false, nil
		}

		club.PendingRequests = slices.DeleteFunc(club.PendingRequests, func(e string) bool { return models.SameEmail(e, studentEmail) })
		if club.PendingRequests == nil {
			club.PendingRequests = []string{}
		}
		if !club.IsMember(studentEmail) {
			club.Members = append(club.Members, studentEmail)
		}

		err := r.requests.Update(ctx, func(log *requestDoc) (bool, error) {
			for i := range *log {
				req := &(*log)[i]
				if req.ID != requestID {
					continue
				}
				if req.Status == models.ClubRequestApproved {
					return false, nil
				}
				processed := r.now()
				req.Status = models.ClubRequestApproved
				req.ProcessedDate = &processed
				closed = true
				return true, nil
			}
			r.logger.Warn().Str("request", requestID).Str("club", clubID).Msg("approved membership without a matching request log entry")
			return false, nil
		})
		if err != nil {
			return false, err
		}

		approved = true
		return true, nil
	})
	if err != nil {
		if closed {
			r.restoreLog(ctx, requestID, func(log *requestDoc) bool {
				for i := range *log {
					req := &(*log)[i]
					if req.ID == requestID && req.Status == models.ClubRequestApproved {
						req.Status = models.ClubRequestPending
						req.ProcessedDate = nil
						return true
					}
				}
				return false
			})
		}
		return false, fmt.Errorf("approve request %s: %w", requestID, err)
	}

	if approved {
		r.logger.Info().Str("club", clubID).Str("student", studentEmail).Str("request", requestID).Msg("join request approved")
	}
	return approved, nil
}

// restoreLog undoes a request log write whose clubs write failed, so the two
// collections agree again. It runs even when ctx is already done. A failed
// undo leaves the log ahead of the clubs and is logged as such.
func (r *ClubRepository) restoreLog(ctx context.Context, requestID string, undo func(*requestDoc) bool) {
	err := r.requests.Update(context.WithoutCancel(ctx), func(log *requestDoc) (bool, error) {
		return undo(log), nil
	})
	if err != nil {
		r.logger.Error().Err(err).Str("request", requestID).Msg("club requests log diverged from clubs")
		return
	}
	r.logger.Warn().Str("request", requestID).Msg("request log change rolled back after clubs write failed")
}

// RequestFilter narrows Requests. Empty fields match everything.
type RequestFilter struct {
	Status models.ClubRequestStatus
	ClubID string
}

// Requests returns log entries in insertion order.
func (r *ClubRepository) Requests(ctx context.Context, filter RequestFilter) ([]models.ClubRequest, error) {
	log, err := r.requests.Load(ctx)
	if err = readable(err); err != nil {
		return nil, fmt.Errorf("load club requests: %w", err)
	}

	out := make([]models.ClubRequest, 0, len(log))
	for _, req := range log {
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		if filter.ClubID != "" && req.ClubID != filter.ClubID {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

// GetRequest returns one log entry or apperrors.ErrClubRequestNotFound.
func (r *ClubRepository) GetRequest(ctx context.Context, requestID string) (*models.ClubRequest, error) {
	log, err := r.requests.Load(ctx)
	if err = readable(err); err != nil {
		return nil, fmt.Errorf("load club requests: %w", err)
	}
	for i := range log {
		if log[i].ID == requestID {
			return &log[i], nil
		}
	}
	return nil, apperrors.ErrClubRequestNotFound
}

// Seed writes the clubs and an empty request log for whichever files do not
// exist yet.
func (r *ClubRepository) Seed(ctx context.Context, clubs []models.Club) (clubsWritten, requestsWritten bool, err error) {
	doc := clubDoc{}
	for i := range clubs {
		c := clubs[i]
		doc[c.ID] = &c
	}
	if clubsWritten, err = r.clubs.SeedIfAbsent(ctx, doc); err != nil {
		return false, false, err
	}
	if requestsWritten, err = r.requests.SeedIfAbsent(ctx, requestDoc{}); err != nil {
		return clubsWritten, false, err
	}
	return clubsWritten, requestsWritten, nil
}
