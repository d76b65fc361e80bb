package notify

import (
	"context"
	"crypto/tls"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/bekwynlaw/law-site-api/pkg/logging"
)

// SMTPConfig holds configuration for the SMTP transport. Secure selects
// implicit TLS; port 465 implies it regardless. AllowSelfSigned disables
// certificate verification for relays with self-signed certificates.
type SMTPConfig struct {
	Host            string
	Port            int
	User            string
	Pass            string
	From            string
	Secure          bool
	AllowSelfSigned bool
}

// Complete reports whether every variable the transport needs is set.
func (c SMTPConfig) Complete() bool {
	return c.Host != "" && c.Port != 0 && c.User != "" && c.Pass != ""
}

// SMTPSender sends emails through an SMTP relay.
type SMTPSender struct {
	client *gomail.Client
	from   string
	logger *logging.Logger
}

// NewSMTPSender creates an SMTP email sender, or an error when the
// client cannot be constructed. Returns nil (no error) when the config
// is incomplete, which callers treat as email disabled.
func NewSMTPSender(cfg SMTPConfig, logger *logging.Logger) (*SMTPSender, error) {
	if !cfg.Complete() {
		return nil, nil
	}
	if logger == nil {
		logger = logging.Default()
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.User),
		gomail.WithPassword(cfg.Pass),
	}
	if cfg.Secure || cfg.Port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	if cfg.AllowSelfSigned {
		opts = append(opts, gomail.WithTLSConfig(&tls.Config{
			InsecureSkipVerify: true, // relay uses a self-signed certificate
			ServerName:         cfg.Host,
		}))
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("notify: smtp client: %w", err)
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	return &SMTPSender{client: client, from: from, logger: logger}, nil
}

// Send sends a plain-text email through the relay.
func (s *SMTPSender) Send(ctx context.Context, msg EmailMessage) error {
	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("notify: smtp from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("notify: smtp to address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		s.logger.Error("smtp send failed", "error", err, "to", msg.To)
		return fmt.Errorf("notify: smtp send failed: %w", err)
	}
	return nil
}

var _ EmailSender = (*SMTPSender)(nil)
