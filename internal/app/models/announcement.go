package models

import "time"

// Priority orders announcements for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Announcement is an admin broadcast. Announcements are append-only.
type Announcement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Category    string     `json:"category"`
	Priority    Priority   `json:"priority"`
	Author      string     `json:"author"`
	CreatedDate time.Time  `json:"created_date"`
	ExpiryDate  *time.Time `json:"expiry_date"`
}

// Expired reports whether the announcement has passed its expiry date.
func (a *Announcement) Expired(now time.Time) bool {
	return a.ExpiryDate != nil && now.After(*a.ExpiryDate)
}

// AnnouncementCategories are the categories offered to the admin.
var AnnouncementCategories = []string{"general", "events", "academic", "urgent"}
