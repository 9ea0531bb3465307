package domain

import (
	"regexp"
	"strings"

	"github.com/mkravets/portfolio-api/internal/errors"
)

// Intentionally permissive: local@domain.tld, no whitespace.
// Deliverability is the provider's problem, not ours.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is an immutable, always-valid address. Construct via NewEmail.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Email{}, &errors.ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailPattern.MatchString(normalized) {
		return Email{}, &errors.ValidationError{Field: "email", Message: "invalid email format"}
	}
	return Email{value: normalized}, nil
}

// IsValidEmail is a non-throwing probe for form-level checks.
func IsValidEmail(raw string) bool {
	_, err := NewEmail(raw)
	return err == nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) LocalPart() string {
	at := strings.LastIndex(e.value, "@")
	return e.value[:at]
}

func (e Email) Domain() string {
	at := strings.LastIndex(e.value, "@")
	return e.value[at+1:]
}

// Equals compares by normalized value.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
