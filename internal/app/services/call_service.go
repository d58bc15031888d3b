package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/repositories"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
	"github.com/yigit/campusconnect/internal/pkg/helpers"
)

// CallService records simulated voice and video calls
type CallService interface {
	StartCall(ctx context.Context, actor models.Actor, req *dto.StartCallRequest) (*models.Call, error)
	UpdateStatus(ctx context.Context, actor models.Actor, callID string, req *dto.UpdateCallRequest) (*models.Call, error)
	ListCalls(ctx context.Context, actor models.Actor, page, size int) (*dto.PaginatedResponse, error)
}

type callServiceImpl struct {
	callRepo *repositories.CallRepository
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewCallService creates a new CallService
func NewCallService(callRepo *repositories.CallRepository, userRepo *repositories.UserRepository, logger zerolog.Logger) CallService {
	return &callServiceImpl{
		callRepo: callRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// StartCall records an active call from the caller to the target. Only
// administrators may attach a purpose.
func (s *callServiceImpl) StartCall(ctx context.Context, actor models.Actor, req *dto.StartCallRequest) (*models.Call, error) {
	if models.SameEmail(req.TargetEmail, actor.Email) {
		return nil, apperrors.NewBadRequestError("Cannot call yourself")
	}
	target, err := s.userRepo.GetByEmail(ctx, req.TargetEmail)
	if err != nil {
		return nil, err
	}

	purpose := ""
	if actor.IsAdmin() {
		purpose = strings.TrimSpace(req.Purpose)
	}
	return s.callRepo.Start(ctx, models.CanonicalEmail(actor.Email), models.CanonicalEmail(target.Email), models.CallType(req.Type), purpose)
}

// UpdateStatus changes the status of a call the caller took part in.
func (s *callServiceImpl) UpdateStatus(ctx context.Context, actor models.Actor, callID string, req *dto.UpdateCallRequest) (*models.Call, error) {
	status := models.CallStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.NewBadRequestError("Unknown call status")
	}

	call, err := s.callRepo.GetByID(ctx, callID)
	if err != nil {
		return nil, err
	}
	if !call.HasParticipant(actor.Email) {
		return nil, apperrors.ErrNotParticipant
	}

	ok, err := s.callRepo.UpdateStatus(ctx, callID, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrCallNotFound
	}
	return s.callRepo.GetByID(ctx, callID)
}

// ListCalls pages through the caller's call history, oldest first.
func (s *callServiceImpl) ListCalls(ctx context.Context, actor models.Actor, page, size int) (*dto.PaginatedResponse, error) {
	calls, err := s.callRepo.ListFor(ctx, actor.Email)
	if err != nil {
		return nil, err
	}
	resp := helpers.Paginate(calls, page, size)
	return &resp, nil
}
