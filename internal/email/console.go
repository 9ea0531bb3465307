package email

import (
	"context"

	"github.com/mkravets/portfolio-api/internal/domain"
	"github.com/mkravets/portfolio-api/internal/logger"
)

// Console logs contact messages instead of delivering them. Used in
// development and whenever no provider API key is configured.
type Console struct{}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) SendContactMessage(ctx context.Context, message domain.ContactMessage) error {
	logger.Log.Info("contact message (console sender)",
		"message_id", message.ID,
		"name", message.Name,
		"from", message.Email.String(),
		"subject", message.Subject,
		"preview", message.Preview(80),
	)
	return nil
}
