package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mkravets/portfolio-api/internal/config"
	"github.com/mkravets/portfolio-api/internal/domain"
	"github.com/mkravets/portfolio-api/internal/logger"
)

const resendEndpoint = "https://api.resend.com/emails"

// Resend delivers contact messages through the Resend transactional
// email API. One POST per message, no retry: a failed call surfaces as
// an error and the message is dropped.
type Resend struct {
	apiKey   string
	from     string
	to       string
	endpoint string
	client   *http.Client
}

func NewResend(cfg *config.Email) *Resend {
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Resend{
		apiKey:   cfg.ApiKey,
		from:     cfg.From,
		to:       cfg.To,
		endpoint: resendEndpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

func (r *Resend) SendContactMessage(ctx context.Context, message domain.ContactMessage) error {
	payload := resendRequest{
		From:    r.from,
		To:      []string{r.to},
		ReplyTo: message.Email.String(),
		Subject: fmt.Sprintf("[portfolio] %s", message.Subject),
		Text:    r.buildBody(message),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal resend payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")
	// One key per ContactMessage so a client retry cannot double-send
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := r.client.Do(req)
	if err != nil {
		logger.Log.Error("resend request failed", "message_id", message.ID, "error", err)
		return fmt.Errorf("resend request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		logger.Log.Error("resend rejected message",
			"message_id", message.ID, "status", resp.StatusCode, "body", string(detail))
		return fmt.Errorf("resend returned status %d", resp.StatusCode)
	}

	return nil
}

func (r *Resend) buildBody(message domain.ContactMessage) string {
	return fmt.Sprintf(
		"New contact form submission %s\n\nFrom: %s <%s>\nSent: %s\n\n%s\n",
		message.ID,
		message.Name,
		message.Email.String(),
		message.CreatedAt.Format(time.RFC1123Z),
		message.Message,
	)
}
