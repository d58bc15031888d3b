package dto

import "time"

// CreateAnnouncementRequest represents an admin broadcast
type CreateAnnouncementRequest struct {
	Title      string     `json:"title" binding:"required,max=200"`
	Message    string     `json:"message" binding:"required,max=5000"`
	Category   string     `json:"category" binding:"required,oneof=general events academic urgent"`
	Priority   string     `json:"priority" binding:"required,oneof=high medium low"`
	ExpiryDate *time.Time `json:"expiryDate"`
}

// AnnouncementFilter narrows the announcement list
type AnnouncementFilter struct {
	ActiveOnly bool `form:"active"`
}
