package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/portfolio-api/internal/config"
	"github.com/mkravets/portfolio-api/internal/domain"
)

func testMessage(t *testing.T) domain.ContactMessage {
	t.Helper()
	message, err := domain.NewContactMessage(domain.ContactInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Project inquiry",
		Message: "I would like to discuss a data platform project.",
	})
	require.NoError(t, err)
	return message
}

func newTestResend(url string) *Resend {
	r := NewResend(&config.Email{
		ApiKey:    "re_test_key",
		From:      "portfolio@example.com",
		To:        "me@example.com",
		TimeoutMs: 2000,
	})
	r.endpoint = url
	return r
}

func TestResendSendContactMessage(t *testing.T) {
	t.Run("sends the expected payload", func(t *testing.T) {
		var got resendRequest
		var header http.Header

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header = r.Header.Clone()
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id":"re_123"}`))
		}))
		defer server.Close()

		sender := newTestResend(server.URL)
		message := testMessage(t)

		require.NoError(t, sender.SendContactMessage(context.Background(), message))

		assert.Equal(t, "Bearer re_test_key", header.Get("Authorization"))
		assert.NotEmpty(t, header.Get("Idempotency-Key"))
		assert.Equal(t, "portfolio@example.com", got.From)
		assert.Equal(t, []string{"me@example.com"}, got.To)
		assert.Equal(t, "jane@example.com", got.ReplyTo)
		assert.Equal(t, "[portfolio] Project inquiry", got.Subject)
		assert.Contains(t, got.Text, message.Message)
		assert.Contains(t, got.Text, message.ID)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
		}))
		defer server.Close()

		sender := newTestResend(server.URL)
		err := sender.SendContactMessage(context.Background(), testMessage(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("context cancellation aborts the call", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		sender := newTestResend(server.URL)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := sender.SendContactMessage(ctx, testMessage(t))
		require.Error(t, err)
	})
}

func TestFromConfig(t *testing.T) {
	t.Run("no api key degrades to console", func(t *testing.T) {
		sender := FromConfig(&config.Email{})
		_, ok := sender.(*Console)
		assert.True(t, ok)
	})

	t.Run("api key selects resend", func(t *testing.T) {
		sender := FromConfig(&config.Email{ApiKey: "re_key"})
		_, ok := sender.(*Resend)
		assert.True(t, ok)
	})
}
