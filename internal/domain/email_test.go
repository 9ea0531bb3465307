package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/portfolio-api/internal/errors"
)

func TestNewEmail(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		want      string
		expectErr bool
	}{
		{name: "simple address", raw: "user@example.com", want: "user@example.com"},
		{name: "normalizes case and whitespace", raw: "  User@Example.COM  ", want: "user@example.com"},
		{name: "minimal valid", raw: "a@b.co", want: "a@b.co"},
		{name: "subdomain", raw: "dev@mail.example.org", want: "dev@mail.example.org"},
		{name: "empty", raw: "", expectErr: true},
		{name: "whitespace only", raw: "   ", expectErr: true},
		{name: "missing at", raw: "example.com", expectErr: true},
		{name: "missing tld", raw: "user@example", expectErr: true},
		{name: "inner whitespace", raw: "us er@example.com", expectErr: true},
		{name: "double at", raw: "user@@example.com", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := NewEmail(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, errors.Is[*errors.ValidationError](err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, email.String())
		})
	}
}

func TestEmailParts(t *testing.T) {
	email, err := NewEmail("John.Doe@Example.com")
	require.NoError(t, err)

	assert.Equal(t, "john.doe", email.LocalPart())
	assert.Equal(t, "example.com", email.Domain())
}

func TestEmailEquals(t *testing.T) {
	a, err := NewEmail("user@example.com")
	require.NoError(t, err)
	b, err := NewEmail("  USER@EXAMPLE.COM ")
	require.NoError(t, err)
	c, err := NewEmail("other@example.com")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail(""))
}
