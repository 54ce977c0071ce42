package email

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/arrazka/lifeboard/internal/config"
	"github.com/arrazka/lifeboard/internal/finance"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendPaymentReminder sends a reminder for an installment or debt payment
func (s *Sender) SendPaymentReminder(to, username, itemName string, dueDate time.Time, amount decimal.Decimal, currency string, isOverdue bool) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	if isOverdue {
		e.Subject = fmt.Sprintf("Overdue payment: %s", itemName)
	} else {
		e.Subject = fmt.Sprintf("Upcoming payment: %s", itemName)
	}

	formatted := finance.FormatAmount(amount, currency)

	// Format email body
	body := fmt.Sprintf("Dear %s,\n\n", username)
	if isOverdue {
		body += fmt.Sprintf(
			"Your payment of %s for %s was due on %s and is now overdue.\n"+
				"Please make the payment as soon as possible.\n",
			formatted, itemName, dueDate.Format("2006-01-02"),
		)
	} else {
		body += fmt.Sprintf(
			"This is a reminder that your payment of %s for %s is due on %s.\n"+
				"Make sure the linked account has sufficient funds.\n",
			formatted, itemName, dueDate.Format("2006-01-02"),
		)
	}
	body += "\nBest regards,\nLifeboard"
	e.Text = []byte(body)

	// Send email
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	err := e.Send(addr, auth)
	if err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
