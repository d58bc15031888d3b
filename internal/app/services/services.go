// Package services holds the portal's business rules. Services sit between
// the HTTP controllers and the repositories; they take request DTOs and the
// calling Actor, and return response DTOs or apperrors values.
package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/campusconnect/internal/app/repositories"
	"github.com/yigit/campusconnect/internal/pkg/auth"
)

// Services bundles every service the router needs.
type Services struct {
	AuthService         AuthService
	ClubService         ClubService
	ChatService         ChatService
	CallService         CallService
	ConfessionService   ConfessionService
	AnnouncementService AnnouncementService
	UserService         UserService
	DashboardService    DashboardService
}

// NewServices wires every service over one set of repositories.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, jwtService, logger.With().Str("service", "auth").Logger()),
		ClubService:         NewClubService(repos.ClubRepository, repos.UserRepository, logger.With().Str("service", "clubs").Logger()),
		ChatService:         NewChatService(repos.ChatRepository, repos.UserRepository, logger.With().Str("service", "chats").Logger()),
		CallService:         NewCallService(repos.CallRepository, repos.UserRepository, logger.With().Str("service", "calls").Logger()),
		ConfessionService:   NewConfessionService(repos.ConfessionRepository, logger.With().Str("service", "confessions").Logger()),
		AnnouncementService: NewAnnouncementService(repos.AnnouncementRepository, logger.With().Str("service", "announcements").Logger()),
		UserService:         NewUserService(repos.UserRepository, repos.ClubRepository, logger.With().Str("service", "users").Logger()),
		DashboardService: NewDashboardService(
			repos.UserRepository,
			repos.ClubRepository,
			repos.ConfessionRepository,
			repos.AnnouncementRepository,
			logger.With().Str("service", "dashboard").Logger(),
		),
	}
}
