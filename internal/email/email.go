// Package email delivers contact messages to the portfolio owner.
// Two implementations: Resend (transactional email HTTP API) for
// production and a console sender for development. Selection happens in
// setup based on whether an API key is configured.
package email

import (
	"context"

	"github.com/mkravets/portfolio-api/internal/config"
	"github.com/mkravets/portfolio-api/internal/domain"
)

type Sender interface {
	SendContactMessage(ctx context.Context, message domain.ContactMessage) error
}

// FromConfig picks the sender: Resend when an API key is present,
// console otherwise.
func FromConfig(cfg *config.Email) Sender {
	if cfg.ApiKey == "" {
		return NewConsole()
	}
	return NewResend(cfg)
}
