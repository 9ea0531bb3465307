package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/mkravets/portfolio-api/internal/domain"
	"github.com/mkravets/portfolio-api/internal/errors"
	"github.com/mkravets/portfolio-api/internal/logger"
)

// to mock service in tests
type ContactService interface {
	Validate(input domain.ContactInput) error
	SendMessage(ctx context.Context, input domain.ContactInput) (*domain.ContactMessage, error)
}

type ContactSender interface {
	SendContactMessage(ctx context.Context, message domain.ContactMessage) error
}

// contactRule is one declarative validation rule; the first failing rule
// wins so the form gets a single field-tagged error per submission.
type contactRule struct {
	field string
	check func(domain.ContactInput) string // empty = ok
}

var contactRules = []contactRule{
	{
		field: "name",
		check: func(in domain.ContactInput) string {
			l := utf8.RuneCountInString(strings.TrimSpace(in.Name))
			if l < domain.ContactNameMinLen || l > domain.ContactNameMaxLen {
				return fmt.Sprintf("name must be between %d and %d characters", domain.ContactNameMinLen, domain.ContactNameMaxLen)
			}
			return ""
		},
	},
	{
		field: "email",
		check: func(in domain.ContactInput) string {
			if !domain.IsValidEmail(in.Email) {
				return "a valid email address is required"
			}
			return ""
		},
	},
	{
		field: "subject",
		check: func(in domain.ContactInput) string {
			if utf8.RuneCountInString(strings.TrimSpace(in.Subject)) < domain.ContactSubjectMinLen {
				return fmt.Sprintf("subject must be at least %d characters", domain.ContactSubjectMinLen)
			}
			return ""
		},
	},
	{
		field: "message",
		check: func(in domain.ContactInput) string {
			if utf8.RuneCountInString(strings.TrimSpace(in.Message)) < domain.ContactMessageMinLen {
				return fmt.Sprintf("message must be at least %d characters", domain.ContactMessageMinLen)
			}
			return ""
		},
	},
}

type Contact struct {
	sender   ContactSender
	sanitize *bluemonday.Policy
}

func NewContact(sender ContactSender) *Contact {
	return &Contact{
		sender:   sender,
		sanitize: bluemonday.StrictPolicy(),
	}
}

// Validate runs the rule list without sending, for pre-submission checks.
func (c *Contact) Validate(input domain.ContactInput) error {
	return validateContact(c.sanitizeInput(input))
}

func validateContact(input domain.ContactInput) error {
	for _, rule := range contactRules {
		if msg := rule.check(input); msg != "" {
			return &errors.ValidationError{Field: rule.field, Message: msg}
		}
	}
	return nil
}

// SendMessage validates the input, constructs the transient ContactMessage
// and hands it to the delivery collaborator. Validation failures come back
// as field-tagged ValidationError; delivery failures as InfrastructureError.
// The message is not queued or retried.
func (c *Contact) SendMessage(ctx context.Context, input domain.ContactInput) (*domain.ContactMessage, error) {
	input = c.sanitizeInput(input)

	if err := validateContact(input); err != nil {
		return nil, err
	}

	message, err := domain.NewContactMessage(input)
	if err != nil {
		return nil, err
	}

	if err := c.sender.SendContactMessage(ctx, message); err != nil {
		logger.Log.Error("contact message delivery failed",
			"message_id", message.ID, "error", err)
		return nil, &errors.InfrastructureError{
			Service: "email",
			Message: "failed to deliver contact message",
			Err:     err,
		}
	}

	logger.Log.Info("contact message sent",
		"message_id", message.ID, "from", message.Email.String(), "preview", message.Preview(50))
	return &message, nil
}

// sanitizeInput strips any HTML from the free-text fields. The strict
// policy escapes entities, so unescape to keep plain text intact.
func (c *Contact) sanitizeInput(input domain.ContactInput) domain.ContactInput {
	clean := func(v string) string {
		return html.UnescapeString(c.sanitize.Sanitize(v))
	}
	input.Name = clean(input.Name)
	input.Subject = clean(input.Subject)
	input.Message = clean(input.Message)
	return input
}
