package models

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleAdmin   RoleType = "admin"
)

// Valid reports whether r is a known role.
func (r RoleType) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// NewID returns a fresh record id.
func NewID() string {
	return uuid.New().String()
}

// NewAnonymousID returns a pseudonymous display id of the form anon_xxxxxxxx.
// It carries no information about the acting user.
func NewAnonymousID() string {
	return "anon_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// CanonicalEmail is the form under which accounts are stored and compared:
// trimmed, NFC-normalized and lower-cased.
func CanonicalEmail(email string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(email)))
}

// SameEmail reports whether a and b name the same account.
func SameEmail(a, b string) bool {
	return CanonicalEmail(a) == CanonicalEmail(b)
}

// Actor is the authenticated caller of a service operation.
type Actor struct {
	Email string
	Name  string
	Role  RoleType
}

// IsAdmin reports whether the caller holds the administrator role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
