package dto

// StartCallRequest represents a simulated call
type StartCallRequest struct {
	TargetEmail string `json:"targetEmail" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=voice video"`
	Purpose     string `json:"purpose" binding:"omitempty,max=200"`
}

// UpdateCallRequest changes a call's status
type UpdateCallRequest struct {
	Status string `json:"status" binding:"required,oneof=active ended missed"`
}
