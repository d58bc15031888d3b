package dto

// CreateConfessionRequest represents a new confession
type CreateConfessionRequest struct {
	Text     string `json:"text" binding:"required,min=1,max=1000"`
	Category string `json:"category" binding:"required,oneof=general relationships academics regrets achievements advice"`
}

// CommentRequest represents a comment on a confession
type CommentRequest struct {
	Text string `json:"text" binding:"required,min=1,max=500"`
}

// LikeResponse reports the outcome of a like
type LikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}
