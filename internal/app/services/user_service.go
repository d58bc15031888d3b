package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/repositories"
)

// UserService exposes the student directory and the contact list
type UserService interface {
	StudentDirectory(ctx context.Context) ([]dto.StudentDirectoryEntry, error)
	Contacts(ctx context.Context, actor models.Actor) ([]dto.ContactEntry, error)
}

type userServiceImpl struct {
	userRepo *repositories.UserRepository
	clubRepo *repositories.ClubRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, clubRepo *repositories.ClubRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		clubRepo: clubRepo,
		logger:   logger,
	}
}

// StudentDirectory lists every student with the number of clubs they joined.
func (s *userServiceImpl) StudentDirectory(ctx context.Context) ([]dto.StudentDirectoryEntry, error) {
	students, err := s.userRepo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	clubs, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	joined := make(map[string]int)
	for _, c := range clubs {
		for _, m := range c.Members {
			joined[models.CanonicalEmail(m)]++
		}
	}

	out := make([]dto.StudentDirectoryEntry, 0, len(students))
	for i := range students {
		out = append(out, dto.StudentDirectoryEntry{
			UserResponse: dto.NewUserResponse(&students[i]),
			ClubsJoined:  joined[models.CanonicalEmail(students[i].Email)],
		})
	}
	return out, nil
}

// Contacts lists the administrators, then every other student, so a caller
// can pick someone to chat with or call. The caller is left out.
func (s *userServiceImpl) Contacts(ctx context.Context, actor models.Actor) ([]dto.ContactEntry, error) {
	admins, err := s.userRepo.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}
	students, err := s.userRepo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ContactEntry, 0, len(admins)+len(students))
	for _, u := range append(admins, students...) {
		if models.SameEmail(u.Email, actor.Email) {
			continue
		}
		out = append(out, dto.ContactEntry{
			Email: u.Email,
			Name:  u.Name,
			Role:  string(u.Role),
			Year:  u.Year,
			Major: u.Major,
		})
	}
	return out, nil
}
