package models

import "time"

// CallType distinguishes simulated voice and video calls.
type CallType string

const (
	CallVoice CallType = "voice"
	CallVideo CallType = "video"
)

// CallStatus is the state of a call record.
type CallStatus string

const (
	CallActive CallStatus = "active"
	CallEnded  CallStatus = "ended"
	CallMissed CallStatus = "missed"
)

// Valid reports whether s is a known status.
func (s CallStatus) Valid() bool {
	return s == CallActive || s == CallEnded || s == CallMissed
}

// Call records a simulated call. It starts active and only changes on an
// explicit status update.
type Call struct {
	ID           string     `json:"id"`
	Participants [2]string  `json:"participants"`
	Type         CallType   `json:"type"`
	StartTime    time.Time  `json:"start_time"`
	Status       CallStatus `json:"status"`
	Initiator    string     `json:"initiator"`
	Purpose      string     `json:"purpose,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
}

// HasParticipant reports whether email takes part in the call.
func (c *Call) HasParticipant(email string) bool {
	return SameEmail(c.Participants[0], email) || SameEmail(c.Participants[1], email)
}

// Duration is the elapsed time of an ended call, zero otherwise.
func (c *Call) Duration() time.Duration {
	if c.EndTime == nil {
		return 0
	}
	return c.EndTime.Sub(c.StartTime)
}
