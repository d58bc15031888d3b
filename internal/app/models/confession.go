package models

import "time"

// Confession is an anonymous post. UserEmail is the true author and is
// kept for moderators only.
type Confession struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Category    string    `json:"category"`
	UserEmail   string    `json:"user_email"`
	AnonymousID string    `json:"anonymous_id"`
	CreatedDate time.Time `json:"created_date"`
	IsApproved  bool      `json:"is_approved"`
	Likes       []Like    `json:"likes"`
	Comments    []Comment `json:"comments"`
}

// Like records one like with its own pseudonym.
type Like struct {
	AnonymousID string `json:"anonymous_id"`
	UserEmail   string `json:"user_email"`
}

// Comment is a reply on a confession with its own pseudonym.
type Comment struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	CreatedDate time.Time `json:"created_date"`
	AnonymousID string    `json:"anonymous_id"`
	UserEmail   string    `json:"user_email"`
}

// LikedBy reports whether email already liked the confession.
func (c *Confession) LikedBy(email string) bool {
	for _, l := range c.Likes {
		if SameEmail(l.UserEmail, email) {
			return true
		}
	}
	return false
}

// ConfessionCategories are the categories offered in the composer.
var ConfessionCategories = []string{"general", "relationships", "academics", "regrets", "achievements", "advice"}
