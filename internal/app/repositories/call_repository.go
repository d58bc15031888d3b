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

type callDoc = []models.Call

// CallRepository owns the calls collection.
type CallRepository struct {
	calls  *store.Collection[callDoc]
	now    func() time.Time
	logger zerolog.Logger
}

// NewCallRepository creates a new CallRepository
func NewCallRepository(s *store.Store, logger zerolog.Logger) *CallRepository {
	return &CallRepository{
		calls:  store.NewCollection(s, store.Calls, func() callDoc { return callDoc{} }),
		now:    time.Now,
		logger: logger.With().Str("repository", "calls").Logger(),
	}
}

// Start appends a new active call and returns it.
func (r *CallRepository) Start(ctx context.Context, initiator, target string, callType models.CallType, purpose string) (*models.Call, error) {
	call := models.Call{
		ID:           models.NewID(),
		Participants: [2]string{initiator, target},
		Type:         callType,
		StartTime:    r.now(),
		Status:       models.CallActive,
		Initiator:    initiator,
		Purpose:      purpose,
	}
	err := r.calls.Update(ctx, func(doc *callDoc) (bool, error) {
		*doc = append(*doc, call)
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("start call: %w", err)
	}
	r.logger.Info().Str("call", call.ID).Str("type", string(callType)).Msg("call started")
	return &call, nil
}

// UpdateStatus sets a call's status. Moving to ended stamps end_time; any
// other status clears it.
// It returns false when the call does not exist.
func (r *CallRepository) UpdateStatus(ctx context.Context, callID string, status models.CallStatus) (bool, error) {
	found := false
	err := r.calls.Update(ctx, func(doc *callDoc) (bool, error) {
		for i := range *doc {
			c := &(*doc)[i]
			if c.ID != callID {
				continue
			}
			c.Status = status
			if status == models.CallEnded {
				end := r.now()
				c.EndTime = &end
			} else {
				c.EndTime = nil
			}
			found = true
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return false, fmt.Errorf("update call %s: %w", callID, err)
	}
	return found, nil
}

// GetByID returns one call or apperrors.ErrCallNotFound.
func (r *CallRepository) GetByID(ctx context.Context, callID string) (*models.Call, error) {
	doc, err := r.calls.Load(ctx)
	if err = readable(err); err != nil {
		return nil, fmt.Errorf("load calls: %w", err)
	}
	for i := range doc {
		if doc[i].ID == callID {
			return &doc[i], nil
		}
	}
	return nil, apperrors.ErrCallNotFound
}

// ListFor returns the calls email took part in, oldest first.
func (r *CallRepository) ListFor(ctx context.Context, email string) ([]models.Call, error) {
	doc, err := r.calls.Load(ctx)
	if err = readable(err); err != nil {
		return nil, fmt.Errorf("load calls: %w", err)
	}
	out := make([]models.Call, 0)
	for _, c := range doc {
		if c.HasParticipant(email) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Seed writes an empty calls collection if it does not exist yet.
func (r *CallRepository) Seed(ctx context.Context) (bool, error) {
	return r.calls.SeedIfAbsent(ctx, callDoc{})
}
