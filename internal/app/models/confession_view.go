package models

import "time"

// StudentConfession is the student-facing projection of a Confession. It has
// no field that can carry an author email, at any depth.
type StudentConfession struct {
	ID          string           `json:"id"`
	Text        string           `json:"text"`
	Category    string           `json:"category"`
	AnonymousID string           `json:"anonymous_id"`
	CreatedDate time.Time        `json:"created_date"`
	IsApproved  bool             `json:"is_approved"`
	Likes       []StudentLike    `json:"likes"`
	Comments    []StudentComment `json:"comments"`
}

// StudentLike is a like without its author.
type StudentLike struct {
	AnonymousID string `json:"anonymous_id"`
}

// StudentComment is a comment without its author.
type StudentComment struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	CreatedDate time.Time `json:"created_date"`
	AnonymousID string    `json:"anonymous_id"`
}

// ProjectForStudents strips author emails from every confession, like and
// comment. It keeps unapproved confessions; callers that build a feed filter
// on IsApproved themselves.
func ProjectForStudents(confessions []Confession) []StudentConfession {
	out := make([]StudentConfession, 0, len(confessions))
	for i := range confessions {
		out = append(out, projectConfession(&confessions[i]))
	}
	return out
}

// ProjectForAdmin is the moderator view: the stored records, unchanged.
func ProjectForAdmin(confessions []Confession) []Confession {
	return confessions
}

// ProjectCommentsForStudents strips author emails from a confession's comments.
func ProjectCommentsForStudents(c *Confession) []StudentComment {
	out := make([]StudentComment, 0, len(c.Comments))
	for _, cm := range c.Comments {
		out = append(out, StudentComment{
			ID:          cm.ID,
			Text:        cm.Text,
			CreatedDate: cm.CreatedDate,
			AnonymousID: cm.AnonymousID,
		})
	}
	return out
}

func projectConfession(c *Confession) StudentConfession {
	likes := make([]StudentLike, 0, len(c.Likes))
	for _, l := range c.Likes {
		likes = append(likes, StudentLike{AnonymousID: l.AnonymousID})
	}
	return StudentConfession{
		ID:          c.ID,
		Text:        c.Text,
		Category:    c.Category,
		AnonymousID: c.AnonymousID,
		CreatedDate: c.CreatedDate,
		IsApproved:  c.IsApproved,
		Likes:       likes,
		Comments:    ProjectCommentsForStudents(c),
	}
}
