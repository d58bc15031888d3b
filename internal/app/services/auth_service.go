package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/repositories"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
	"github.com/yigit/campusconnect/internal/pkg/auth"
	"github.com/yigit/campusconnect/internal/pkg/validation"
)

// AuthService handles accounts and sessions
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	LoginStudent(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	LoginAdmin(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetSecurityQuestion(ctx context.Context, email string) (*dto.SecurityQuestionResponse, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	GetProfile(ctx context.Context, email string) (*dto.UserResponse, error)
}

type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
	now        func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
		now:        time.Now,
	}
}

// Signup registers a student and logs them in.
func (s *authServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	email := models.CanonicalEmail(req.Email)
	if !validation.IsInstitutionalEmail(email) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidEmail, "A college email address is required")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("Password must be at least %d characters", validation.PasswordMinLength))
	}
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.NewCustomError(apperrors.ErrPasswordMismatch, "Passwords do not match")
	}
	if !slices.Contains(models.SecurityQuestions, req.SecurityQuestion) {
		return nil, apperrors.NewBadRequestError("Unknown security question")
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	answerHash, err := auth.HashSecurityAnswer(req.SecurityAnswer)
	if err != nil {
		return nil, fmt.Errorf("hash security answer: %w", err)
	}

	user := &models.User{
		Email:              email,
		Name:               strings.TrimSpace(req.Name),
		PasswordHash:       passwordHash,
		Role:               models.RoleStudent,
		Year:               req.Year,
		Major:              strings.TrimSpace(req.Major),
		SecurityQuestion:   req.SecurityQuestion,
		SecurityAnswerHash: answerHash,
		JoinedDate:         s.now(),
	}
	if err := s.userRepo.CreateStudent(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("Student registered")
	return s.issue(user)
}

// LoginStudent verifies student credentials.
func (s *authServiceImpl) LoginStudent(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.login(ctx, req, models.RoleStudent)
}

// LoginAdmin verifies administrator credentials.
func (s *authServiceImpl) LoginAdmin(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.login(ctx, req, models.RoleAdmin)
}

func (s *authServiceImpl) login(ctx context.Context, req *dto.LoginRequest, role models.RoleType) (*dto.AuthResponse, error) {
	email := models.CanonicalEmail(req.Email)
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Debug().Str("email", email).Msg("Login for unknown account")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Role != role || !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Debug().Str("email", email).Str("role", string(role)).Msg("Login rejected")
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Str("email", email).Str("role", string(role)).Msg("User logged in")
	return s.issue(user)
}

func (s *authServiceImpl) issue(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user.Email, user.Name, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int64(expiresIn),
		},
		User: dto.NewUserResponse(user),
	}, nil
}

// GetSecurityQuestion returns the question a student picked at signup.
func (s *authServiceImpl) GetSecurityQuestion(ctx context.Context, email string) (*dto.SecurityQuestionResponse, error) {
	user, err := s.student(ctx, email)
	if err != nil {
		return nil, err
	}
	return &dto.SecurityQuestionResponse{Email: user.Email, Question: user.SecurityQuestion}, nil
}

// ResetPassword replaces a student's password after checking the security answer.
func (s *authServiceImpl) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	user, err := s.student(ctx, req.Email)
	if err != nil {
		return err
	}
	if !auth.CheckSecurityAnswer(user.SecurityAnswerHash, req.SecurityAnswer) {
		s.logger.Warn().Str("email", user.Email).Msg("Password reset with wrong security answer")
		return apperrors.ErrWrongSecurityAnswer
	}
	if len(req.NewPassword) < validation.PasswordMinLength {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("Password must be at least %d characters", validation.PasswordMinLength))
	}
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.NewCustomError(apperrors.ErrPasswordMismatch, "Passwords do not match")
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.userRepo.UpdateStudentPassword(ctx, user.Email, hash); err != nil {
		return err
	}

	s.logger.Info().Str("email", user.Email).Msg("Password reset")
	return nil
}

func (s *authServiceImpl) student(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleStudent {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// GetProfile returns the public profile of email.
func (s *authServiceImpl) GetProfile(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}
