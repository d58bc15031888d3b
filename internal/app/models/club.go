package models

import (
	"slices"
	"time"
)

// Club is a student club. Members and PendingRequests hold student emails
// and never share an entry.
type Club struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Members         []string  `json:"members"`
	PendingRequests []string  `json:"pending_requests"`
	Admins          []string  `json:"admins"`
	MeetingSchedule string    `json:"meeting_schedule"`
	Location        string    `json:"location"`
	CreatedDate     time.Time `json:"created_date"`
}

// IsMember reports whether email is in the member list.
func (c *Club) IsMember(email string) bool {
	return slices.ContainsFunc(c.Members, func(m string) bool { return SameEmail(m, email) })
}

// IsPending reports whether email has an open join request.
func (c *Club) IsPending(email string) bool {
	return slices.ContainsFunc(c.PendingRequests, func(m string) bool { return SameEmail(m, email) })
}

// ClubRequestStatus is the lifecycle state of a join request.
type ClubRequestStatus string

const (
	ClubRequestPending  ClubRequestStatus = "pending"
	ClubRequestApproved ClubRequestStatus = "approved"
)

// ClubRequest is one entry in the join-request log.
type ClubRequest struct {
	ID            string            `json:"id"`
	StudentEmail  string            `json:"student_email"`
	ClubID        string            `json:"club_id"`
	Status        ClubRequestStatus `json:"status"`
	RequestDate   time.Time         `json:"request_date"`
	ProcessedDate *time.Time        `json:"processed_date,omitempty"`
}

// MembershipStatus describes a student's relation to one club.
type MembershipStatus string

const (
	MembershipNone    MembershipStatus = "none"
	MembershipPending MembershipStatus = "pending"
	MembershipMember  MembershipStatus = "member"
)

// StatusFor returns email's membership status in the club.
func (c *Club) StatusFor(email string) MembershipStatus {
	switch {
	case c.IsMember(email):
		return MembershipMember
	case c.IsPending(email):
		return MembershipPending
	default:
		return MembershipNone
	}
}
