package notify

import (
	"context"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/sync/errgroup"

	"github.com/bekwynlaw/law-site-api/pkg/logging"
)

const (
	firmName  = "Bekwyn Law PC"
	firmPhone = "+1 (289) 838-2982"
)

// Service composes and sends the operator alert plus the submitter
// acknowledgment for each form. All sends are best effort: callers log
// the returned error and move on, they never surface it to the client.
type Service struct {
	sender    EmailSender
	recipient string
	logger    *logging.Logger
}

// NewService creates a notification service. A nil sender or empty
// recipient leaves the service disabled rather than erroring.
func NewService(sender EmailSender, recipient string, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		sender:    sender,
		recipient: recipient,
		logger:    logger,
	}
}

// Enabled reports whether notifications can be sent. When the transport
// or recipient is unconfigured the pipeline skips notification entirely.
func (s *Service) Enabled() bool {
	return s != nil && s.sender != nil && s.recipient != ""
}

// ContactInquiry is the notification payload for the general contact form.
type ContactInquiry struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	ServiceLabel string
	Message      string
}

// NotifyContactInquiry sends the staff alert and the submitter
// confirmation for a contact-form lead. The two emails are independent
// and dispatched concurrently.
func (s *Service) NotifyContactInquiry(ctx context.Context, inquiry ContactInquiry) error {
	if !s.Enabled() {
		s.logger.Debug("notify: email not configured, skipping contact notification")
		return nil
	}

	alertLines := []string{
		"New contact inquiry",
		"",
		"Name: " + inquiry.FirstName + " " + inquiry.LastName,
		"Email: " + inquiry.Email,
	}
	if inquiry.Phone != "" {
		alertLines = append(alertLines, "Phone: "+formatPhone(inquiry.Phone))
	}
	if inquiry.ServiceLabel != "" {
		alertLines = append(alertLines, "Requested area: "+inquiry.ServiceLabel)
	}
	alertLines = append(alertLines, "", "Message:", inquiry.Message)

	confirmationLines := []string{
		"Hello " + inquiry.FirstName + ",",
		"",
		"Thank you for contacting " + firmName + ". We've received your message and will respond within one business day.",
		"",
		"For urgent matters, please call us at " + firmPhone + ".",
		"",
		"Warm regards,",
		firmName,
	}

	return s.sendPair(ctx,
		EmailMessage{
			To:      s.recipient,
			Subject: "New website inquiry",
			Body:    strings.Join(alertLines, "\n"),
		},
		EmailMessage{
			To:      inquiry.Email,
			Subject: "We received your inquiry",
			Body:    strings.Join(confirmationLines, "\n"),
		},
	)
}

// NotaryInquiry is the notification payload for the notary form.
type NotaryInquiry struct {
	Name         string
	Email        string
	Phone        string
	ServiceLabel string
	Message      string
}

// NotifyNotaryInquiry sends the staff alert and the submitter
// confirmation for a notary lead.
func (s *Service) NotifyNotaryInquiry(ctx context.Context, inquiry NotaryInquiry) error {
	if !s.Enabled() {
		s.logger.Debug("notify: email not configured, skipping notary notification")
		return nil
	}

	alertLines := []string{
		"New Notary Service Inquiry",
		"",
		"Name: " + inquiry.Name,
		"Email: " + inquiry.Email,
	}
	if inquiry.Phone != "" {
		alertLines = append(alertLines, "Phone: "+formatPhone(inquiry.Phone))
	}
	if inquiry.ServiceLabel != "" {
		alertLines = append(alertLines, "Service: "+inquiry.ServiceLabel)
	}
	alertLines = append(alertLines,
		"",
		"Message:",
		inquiry.Message,
		"",
		"---",
		"Source: Notary Website Form",
	)

	firstName, _, _ := strings.Cut(strings.TrimSpace(inquiry.Name), " ")
	confirmationLines := []string{
		"Hello " + firstName + ",",
		"",
		"Thank you for contacting " + firmName + " for notary services. We've received your inquiry and will respond within 24 hours.",
		"",
		"For urgent matters, please call us at " + firmPhone + ".",
		"",
		"Warm regards,",
		firmName,
	}

	return s.sendPair(ctx,
		EmailMessage{
			To:      s.recipient,
			Subject: "New Notary Service Inquiry",
			Body:    strings.Join(alertLines, "\n"),
		},
		EmailMessage{
			To:      inquiry.Email,
			Subject: "We received your notary inquiry - " + firmName,
			Body:    strings.Join(confirmationLines, "\n"),
		},
	)
}

// NewsletterSignup is the notification payload for a newsletter signup.
type NewsletterSignup struct {
	Email  string
	Name   string
	Source string
}

// NotifyNewsletterSignup sends the staff alert and the subscriber
// welcome email.
func (s *Service) NotifyNewsletterSignup(ctx context.Context, signup NewsletterSignup) error {
	if !s.Enabled() {
		s.logger.Debug("notify: email not configured, skipping newsletter notification")
		return nil
	}

	alertLines := []string{
		"New newsletter subscriber",
		"",
		"Email: " + signup.Email,
	}
	if signup.Name != "" {
		alertLines = append(alertLines, "Name: "+signup.Name)
	}
	if signup.Source != "" {
		alertLines = append(alertLines, "Source: "+signup.Source)
	}
	alertLines = append(alertLines, "", "This subscriber joined via the law website.")

	welcomeLines := []string{
		"Thank you for subscribing to Bekwyn Law's newsletter!",
		"",
		"We're glad to keep you informed with legal insights, firm updates, and resources that support you and your loved ones.",
		"",
		"If you have any questions, reach out to us at " + s.recipient + ".",
		"",
		"Warm regards,",
		firmName,
	}

	return s.sendPair(ctx,
		EmailMessage{
			To:      s.recipient,
			Subject: "New newsletter subscriber",
			Body:    strings.Join(alertLines, "\n"),
		},
		EmailMessage{
			To:      signup.Email,
			Subject: "Thank you for subscribing to Bekwyn Law",
			Body:    strings.Join(welcomeLines, "\n"),
		},
	)
}

// sendPair dispatches the alert and the acknowledgment concurrently.
// A failure in one does not cancel the other.
func (s *Service) sendPair(ctx context.Context, alert, acknowledgment EmailMessage) error {
	var g errgroup.Group
	g.Go(func() error {
		if err := s.sender.Send(ctx, alert); err != nil {
			s.logger.Error("notify: alert send failed", "error", err, "to", alert.To)
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := s.sender.Send(ctx, acknowledgment); err != nil {
			s.logger.Error("notify: acknowledgment send failed", "error", err, "to", acknowledgment.To)
			return err
		}
		return nil
	})
	return g.Wait()
}

// formatPhone renders a phone number in international format for the
// staff alert when it parses; raw user input passes through otherwise.
func formatPhone(raw string) string {
	parsed, err := phonenumbers.Parse(raw, "CA")
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return raw
	}
	return phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL)
}
