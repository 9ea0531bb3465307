package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/portfolio-api/internal/errors"
)

func validContactInput() ContactInput {
	return ContactInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello there",
		Message: "I would like to talk about a project.",
	}
}

func TestNewContactMessage(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		msg, err := NewContactMessage(validContactInput())
		require.NoError(t, err)

		assert.Equal(t, "Jane Doe", msg.Name)
		assert.Equal(t, "jane@example.com", msg.Email.String())
		assert.False(t, msg.CreatedAt.IsZero())
		assert.Regexp(t, `^msg-[0-9a-z]+-[0-9a-z]{6}$`, msg.ID)
	})

	t.Run("ids are unique per submission", func(t *testing.T) {
		a, err := NewContactMessage(validContactInput())
		require.NoError(t, err)
		b, err := NewContactMessage(validContactInput())
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	// every bound exactly at its minimum must pass
	t.Run("minimum lengths accepted", func(t *testing.T) {
		msg, err := NewContactMessage(ContactInput{
			Name:    "Jo",
			Email:   "a@b.co",
			Subject: "Sub",
			Message: "Ten chars!",
		})
		require.NoError(t, err)
		assert.Equal(t, "Jo", msg.Name)
	})

	testCases := []struct {
		name      string
		mutate    func(*ContactInput)
		wantField string
	}{
		{
			name:      "name too short",
			mutate:    func(in *ContactInput) { in.Name = "J" },
			wantField: "name",
		},
		{
			name:      "name too long",
			mutate:    func(in *ContactInput) { in.Name = strings.Repeat("x", 101) },
			wantField: "name",
		},
		{
			name:      "invalid email",
			mutate:    func(in *ContactInput) { in.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "subject too short",
			mutate:    func(in *ContactInput) { in.Subject = "Su" },
			wantField: "subject",
		},
		{
			name:      "message too short",
			mutate:    func(in *ContactInput) { in.Message = "Nine char" },
			wantField: "message",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validContactInput()
			tc.mutate(&input)

			_, err := NewContactMessage(input)
			require.Error(t, err)

			var validationErr *errors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantField, validationErr.Field)
		})
	}
}

func TestContactMessagePreview(t *testing.T) {
	input := validContactInput()
	input.Message = strings.Repeat("abcde ", 20) // 120 chars
	msg, err := NewContactMessage(input)
	require.NoError(t, err)

	t.Run("truncates to exactly n characters", func(t *testing.T) {
		preview := msg.Preview(50)
		assert.Len(t, []rune(preview), 50)
		assert.True(t, strings.HasSuffix(preview, "..."))
	})

	t.Run("short message returned unchanged", func(t *testing.T) {
		short, err := NewContactMessage(validContactInput())
		require.NoError(t, err)
		assert.Equal(t, short.Message, short.Preview(1000))
	})
}
