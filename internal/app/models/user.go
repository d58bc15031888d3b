package models

import "time"

// User is a portal account, keyed by email in the users (admin) and
// students collections.
type User struct {
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	PasswordHash       string    `json:"password_hash"`
	Role               RoleType  `json:"role"`
	Year               string    `json:"year,omitempty"`
	Major              string    `json:"major,omitempty"`
	SecurityQuestion   string    `json:"security_question,omitempty"`
	SecurityAnswerHash string    `json:"security_answer_hash,omitempty"`
	JoinedDate         time.Time `json:"joined_date"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// SecurityQuestions are the prompts offered at signup.
var SecurityQuestions = []string{
	"What is your favorite color?",
	"What is your favorite place?",
}

// StudentYears are the class years offered at signup.
var StudentYears = []string{"Junior", "Senior"}
