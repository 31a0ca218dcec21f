// Package mailer composes outbound messages with file attachments and hands
// them to the configured SMTP endpoint. Delivery is a single attempt over
// STARTTLS with authentication; failures are logged with context and always
// surfaced to the caller, never retried or swallowed.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-gomail/gomail"

	"github.com/dmitrijs2005/dporg/internal/common"
	"github.com/dmitrijs2005/dporg/internal/config"
	"github.com/dmitrijs2005/dporg/internal/logging"
)

// Dispatcher sends client files and receipts by email.
type Dispatcher struct {
	store *config.EmailStore
	log   logging.Logger
}

func NewDispatcher(store *config.EmailStore, log logging.Logger) *Dispatcher {
	return &Dispatcher{store: store, log: log}
}

// dialAndSend is a test seam for the network call.
var dialAndSend = func(d *gomail.Dialer, m *gomail.Message) error {
	return d.DialAndSend(m)
}

// Send emails the given files, plus the receipt if provided, to the address.
// body overrides the default greeting when non-empty. Empty entries in the
// attachment list are skipped with a warning rather than failing the send.
func (d *Dispatcher) Send(ctx context.Context, to, clientName string, filePaths []string, receiptPath, body string) error {
	cfg := d.store.Load()
	if strings.TrimSpace(cfg.Sender) == "" || strings.TrimSpace(cfg.Password) == "" {
		return fmt.Errorf("send to %s: %w", to, common.ErrorConfigMissing)
	}

	msg := d.buildMessage(ctx, cfg, to, clientName, filePaths, receiptPath, body)

	d.log.Info(ctx, "connecting to smtp server", "host", cfg.SMTPHost, "port", cfg.SMTPPort)

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Sender, cfg.Password)
	if err := dialAndSend(dialer, msg); err != nil {
		d.log.Error(ctx, "failed to send email", "to", to, "client", clientName, "err", err)
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	d.log.Info(ctx, "email sent", "to", to, "client", clientName)
	return nil
}

func (d *Dispatcher) buildMessage(ctx context.Context, cfg *config.EmailConfig, to, clientName string, filePaths []string, receiptPath, body string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.Sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your Files and Receipt - "+clientName)

	if body == "" {
		body = fmt.Sprintf("Hi %s,\n\nAttached are your files and receipt.\nThank you!", clientName)
	}
	msg.SetBody("text/plain", body)

	attachments := make([]string, 0, len(filePaths)+1)
	attachments = append(attachments, filePaths...)
	if receiptPath != "" {
		attachments = append(attachments, receiptPath)
	}

	for _, path := range attachments {
		if path == "" {
			d.log.Warn(ctx, "skipping empty attachment path")
			continue
		}
		msg.Attach(path)
	}

	return msg
}
