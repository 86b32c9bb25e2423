package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/medisuite/hospital-api/internal/config"
	"github.com/medisuite/hospital-api/internal/model"
)

// Service sends transactional mail. Receipts are best-effort; callers
// must never fail a request on a send error.
type Service interface {
	SendReceipt(ctx context.Context, to, name string, bill *model.Bill) error
}

// NewService returns an SMTP-backed sender, or a no-op one when no
// SMTP host is configured.
func NewService(cfg config.SMTPConfig) Service {
	if cfg.Host == "" {
		return &noopService{}
	}
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

func (s *smtpService) SendReceipt(_ context.Context, to, name string, bill *model.Bill) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Payment receipt")

	body := fmt.Sprintf("Dear %s,\n\nYour payment of %.2f has been received.\n\n", name, bill.Amount)
	for _, item := range bill.Items {
		body += fmt.Sprintf("  %s: %.0f x %.2f\n", item.Description, item.Quantity, item.Price)
	}
	if bill.PaymentDate != nil {
		body += fmt.Sprintf("\nPaid on %s.\n", bill.PaymentDate.Format("2006-01-02"))
	}
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send receipt to %s: %w", to, err)
	}
	return nil
}

type noopService struct{}

func (s *noopService) SendReceipt(context.Context, string, string, *model.Bill) error {
	return nil
}
