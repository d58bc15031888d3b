package dto

import (
	"time"

	"github.com/yigit/campusconnect/internal/app/models"
)

// ClubResponse is a club together with the caller's relation to it
type ClubResponse struct {
	models.Club
	MemberCount      int    `json:"memberCount"`
	PendingCount     int    `json:"pendingCount"`
	MembershipStatus string `json:"membershipStatus"`
}

// NewClubResponse builds a ClubResponse as seen by email.
func NewClubResponse(c *models.Club, email string) ClubResponse {
	return ClubResponse{
		Club:             *c,
		MemberCount:      len(c.Members),
		PendingCount:     len(c.PendingRequests),
		MembershipStatus: string(c.StatusFor(email)),
	}
}

// JoinClubResponse reports whether a new request was recorded
type JoinClubResponse struct {
	ClubID    string `json:"clubId"`
	Requested bool   `json:"requested"`
	Status    string `json:"status"`
}

// ClubRequestResponse is a join request enriched for the admin view
type ClubRequestResponse struct {
	ID            string     `json:"id"`
	StudentEmail  string     `json:"studentEmail"`
	StudentName   string     `json:"studentName,omitempty"`
	ClubID        string     `json:"clubId"`
	ClubName      string     `json:"clubName,omitempty"`
	Status        string     `json:"status"`
	RequestDate   time.Time  `json:"requestDate"`
	ProcessedDate *time.Time `json:"processedDate,omitempty"`
}

// ClubRequestFilter narrows the admin request list
type ClubRequestFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved"`
	ClubID string `form:"clubId"`
}
