package dto

import "github.com/yigit/campusconnect/internal/app/models"

// CreateChatRequest opens (or finds) the chat with another user
type CreateChatRequest struct {
	ParticipantEmail string `json:"participantEmail" binding:"required"`
}

// SendMessageRequest represents a text message
type SendMessageRequest struct {
	Text string `json:"text" binding:"required,max=2000"`
}

// ChatResponse summarizes a chat for its participant
type ChatResponse struct {
	ID           string          `json:"id"`
	Participants [2]string       `json:"participants"`
	With         string          `json:"with"`
	MessageCount int             `json:"messageCount"`
	LastMessage  *models.Message `json:"lastMessage,omitempty"`
}

// NewChatResponse builds a ChatResponse as seen by email.
func NewChatResponse(c *models.Chat, email string) ChatResponse {
	resp := ChatResponse{
		ID:           c.ID,
		Participants: c.Participants,
		With:         c.Other(email),
		MessageCount: len(c.Messages),
	}
	if n := len(c.Messages); n > 0 {
		last := c.Messages[n-1]
		resp.LastMessage = &last
	}
	return resp
}
