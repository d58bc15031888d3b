package dto

import (
	"time"

	"github.com/yigit/campusconnect/internal/app/models"
)

// SignupRequest represents a student registration
type SignupRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=100"`
	Email            string `json:"email" binding:"required,campusemail"`
	Year             string `json:"year" binding:"required,oneof=Junior Senior"`
	Major            string `json:"major" binding:"required,max=100"`
	Password         string `json:"password" binding:"required,min=6"`
	ConfirmPassword  string `json:"confirmPassword" binding:"required,eqfield=Password"`
	SecurityQuestion string `json:"securityQuestion" binding:"required"`
	SecurityAnswer   string `json:"securityAnswer" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SecurityQuestionRequest asks for the question tied to a student account
type SecurityQuestionRequest struct {
	Email string `json:"email" binding:"required"`
}

// SecurityQuestionResponse carries the stored question
type SecurityQuestionResponse struct {
	Email    string `json:"email"`
	Question string `json:"question"`
}

// ResetPasswordRequest resets a password with the security answer
type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required"`
	SecurityAnswer  string `json:"securityAnswer" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// UserResponse represents basic user information
type UserResponse struct {
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Year       string    `json:"year,omitempty"`
	Major      string    `json:"major,omitempty"`
	JoinedDate time.Time `json:"joinedDate"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// StudentDirectoryEntry is one row of the admin student directory
type StudentDirectoryEntry struct {
	UserResponse
	ClubsJoined int `json:"clubsJoined"`
}

// ContactEntry is someone a student can open a chat or call with
type ContactEntry struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Year  string `json:"year,omitempty"`
	Major string `json:"major,omitempty"`
}

// NewUserResponse maps a stored user onto its public shape. Hashes never
// leave the service layer.
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		Email:      u.Email,
		Name:       u.Name,
		Role:       string(u.Role),
		Year:       u.Year,
		Major:      u.Major,
		JoinedDate: u.JoinedDate,
	}
}
