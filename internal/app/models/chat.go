package models

import "time"

// Chat is a direct conversation between two users.
type Chat struct {
	ID           string    `json:"id"`
	Participants [2]string `json:"participants"`
	Messages     []Message `json:"messages"`
	CreatedDate  time.Time `json:"created_date"`
}

// HasParticipant reports whether email takes part in the chat.
func (c *Chat) HasParticipant(email string) bool {
	return SameEmail(c.Participants[0], email) || SameEmail(c.Participants[1], email)
}

// Other returns the participant that is not email.
func (c *Chat) Other(email string) string {
	if SameEmail(c.Participants[0], email) {
		return c.Participants[1]
	}
	return c.Participants[0]
}

// Message is appended to a chat and never edited.
type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
