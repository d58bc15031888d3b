package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// EmailPattern is a loose address shape; the institutional check is separate.
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

	// InstitutionalMarkers are substrings that mark a college address.
	InstitutionalMarkers = []string{".edu", ".ac."}

	PasswordMinLength = 6

	NameMinLength = 2
	NameMaxLength = 100
)

var emailRegexp = regexp.MustCompile(EmailPattern)

// IsInstitutionalEmail reports whether email looks like a college address.
func IsInstitutionalEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegexp.MatchString(email) {
		return false
	}
	for _, m := range InstitutionalMarkers {
		if strings.Contains(email, m) {
			return true
		}
	}
	return false
}

// CampusEmailTag is the struct tag registered by RegisterRules.
const CampusEmailTag = "campusemail"

// RegisterRules installs the portal's custom rules on a validator instance.
func RegisterRules(v *validator.Validate) error {
	return v.RegisterValidation(CampusEmailTag, func(fl validator.FieldLevel) bool {
		return IsInstitutionalEmail(fl.Field().String())
	})
}

// FormatFieldError renders a validator.FieldError as a sentence.
func FormatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case CampusEmailTag:
		return e.Field() + " must be a college email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "eqfield":
		return e.Field() + " must match " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
