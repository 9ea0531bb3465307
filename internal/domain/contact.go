package domain

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mkravets/portfolio-api/internal/errors"
)

const (
	ContactNameMinLen    = 2
	ContactNameMaxLen    = 100
	ContactSubjectMinLen = 3
	ContactMessageMinLen = 10
)

// ContactMessage is a transient command object built per form submission.
// It lives only for the duration of the send and is never persisted.
type ContactMessage struct {
	ID        string
	Name      string
	Email     Email
	Subject   string
	Message   string
	CreatedAt time.Time
}

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func NewContactMessage(input ContactInput) (ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	if l := utf8.RuneCountInString(name); l < ContactNameMinLen || l > ContactNameMaxLen {
		return ContactMessage{}, &errors.ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("name must be between %d and %d characters", ContactNameMinLen, ContactNameMaxLen),
		}
	}

	email, err := NewEmail(input.Email)
	if err != nil {
		return ContactMessage{}, err
	}

	subject := strings.TrimSpace(input.Subject)
	if utf8.RuneCountInString(subject) < ContactSubjectMinLen {
		return ContactMessage{}, &errors.ValidationError{
			Field:   "subject",
			Message: fmt.Sprintf("subject must be at least %d characters", ContactSubjectMinLen),
		}
	}

	message := strings.TrimSpace(input.Message)
	if utf8.RuneCountInString(message) < ContactMessageMinLen {
		return ContactMessage{}, &errors.ValidationError{
			Field:   "message",
			Message: fmt.Sprintf("message must be at least %d characters", ContactMessageMinLen),
		}
	}

	return ContactMessage{
		ID:        newContactMessageID(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now(),
	}, nil
}

// newContactMessageID generates ids like "msg-m1a2b3c4-x9y8z7".
func newContactMessageID() string {
	const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)

	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}

	return "msg-" + timestamp + "-" + string(suffix)
}

// Preview returns the message truncated to exactly n runes, ending in
// "..." when truncation happened.
func (m ContactMessage) Preview(n int) string {
	runes := []rune(m.Message)
	if len(runes) <= n {
		return m.Message
	}
	if n <= 3 {
		return strings.Repeat(".", max(0, n))
	}
	return string(runes[:n-3]) + "..."
}

func (m ContactMessage) Equals(other ContactMessage) bool {
	return m.ID == other.ID
}
