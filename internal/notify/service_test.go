package notify

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []EmailMessage
	fail map[string]error // keyed by recipient
}

func (r *recordingSender) Send(ctx context.Context, msg EmailMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.fail[msg.To]; ok {
		return err
	}
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recordingSender) sentTo(to string) *EmailMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sent {
		if r.sent[i].To == to {
			return &r.sent[i]
		}
	}
	return nil
}

func TestService_Enabled(t *testing.T) {
	if NewService(nil, "ops@bekwynlaw.com", nil).Enabled() {
		t.Error("expected disabled without sender")
	}
	if NewService(&recordingSender{}, "", nil).Enabled() {
		t.Error("expected disabled without recipient")
	}
	if !NewService(&recordingSender{}, "ops@bekwynlaw.com", nil).Enabled() {
		t.Error("expected enabled with sender and recipient")
	}
}

func TestNotifyContactInquiry_SendsAlertAndConfirmation(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(sender, "ops@bekwynlaw.com", nil)

	err := svc.NotifyContactInquiry(context.Background(), ContactInquiry{
		FirstName:    "Ada",
		LastName:     "Okafor",
		Email:        "ada@example.com",
		Phone:        "2898382982",
		ServiceLabel: "Family Law",
		Message:      "Need help with a sponsorship application.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alert := sender.sentTo("ops@bekwynlaw.com")
	if alert == nil {
		t.Fatal("expected operator alert")
	}
	if alert.Subject != "New website inquiry" {
		t.Errorf("unexpected alert subject %q", alert.Subject)
	}
	if !strings.Contains(alert.Body, "Requested area: Family Law") {
		t.Errorf("alert missing service label:\n%s", alert.Body)
	}
	if !strings.Contains(alert.Body, "+1 289-838-2982") {
		t.Errorf("expected formatted phone in alert:\n%s", alert.Body)
	}

	confirmation := sender.sentTo("ada@example.com")
	if confirmation == nil {
		t.Fatal("expected submitter confirmation")
	}
	if !strings.Contains(confirmation.Body, "Hello Ada,") {
		t.Errorf("confirmation missing greeting:\n%s", confirmation.Body)
	}
	if !strings.Contains(confirmation.Body, "one business day") {
		t.Errorf("confirmation missing reply window:\n%s", confirmation.Body)
	}
}

func TestNotifyContactInquiry_OmitsEmptyOptionalLines(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(sender, "ops@bekwynlaw.com", nil)

	if err := svc.NotifyContactInquiry(context.Background(), ContactInquiry{
		FirstName: "Ada",
		LastName:  "Okafor",
		Email:     "ada@example.com",
		Message:   "hello",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alert := sender.sentTo("ops@bekwynlaw.com")
	if strings.Contains(alert.Body, "Phone:") || strings.Contains(alert.Body, "Requested area:") {
		t.Errorf("expected optional lines omitted:\n%s", alert.Body)
	}
}

func TestNotifyNotaryInquiry_Templates(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(sender, "ops@bekwynlaw.com", nil)

	err := svc.NotifyNotaryInquiry(context.Background(), NotaryInquiry{
		Name:         "Chidi Anagonye Jr",
		Email:        "chidi@example.com",
		ServiceLabel: "Affidavit Witnessing",
		Message:      "Two affidavits to witness.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alert := sender.sentTo("ops@bekwynlaw.com")
	if alert.Subject != "New Notary Service Inquiry" {
		t.Errorf("unexpected alert subject %q", alert.Subject)
	}
	if !strings.Contains(alert.Body, "Source: Notary Website Form") {
		t.Errorf("alert missing source trailer:\n%s", alert.Body)
	}

	confirmation := sender.sentTo("chidi@example.com")
	if !strings.Contains(confirmation.Body, "Hello Chidi,") {
		t.Errorf("expected first name only in greeting:\n%s", confirmation.Body)
	}
	if !strings.Contains(confirmation.Body, "within 24 hours") {
		t.Errorf("confirmation missing notary reply window:\n%s", confirmation.Body)
	}
}

func TestNotifyNewsletterSignup_CopyAndRecipients(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(sender, "ops@bekwynlaw.com", nil)

	err := svc.NotifyNewsletterSignup(context.Background(), NewsletterSignup{
		Email:  "john@example.com",
		Source: "footer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alert := sender.sentTo("ops@bekwynlaw.com")
	if !strings.Contains(alert.Body, "Source: footer") {
		t.Errorf("alert missing source line:\n%s", alert.Body)
	}
	if strings.Contains(alert.Body, "Name:") {
		t.Errorf("alert should omit empty name line:\n%s", alert.Body)
	}

	welcome := sender.sentTo("john@example.com")
	if welcome == nil || !strings.Contains(welcome.Body, "Thank you for subscribing") {
		t.Fatalf("expected welcome email, got %+v", welcome)
	}
}

func TestSendPair_OneFailureDoesNotStopOther(t *testing.T) {
	sender := &recordingSender{fail: map[string]error{
		"ops@bekwynlaw.com": errors.New("relay refused"),
	}}
	svc := NewService(sender, "ops@bekwynlaw.com", nil)

	err := svc.NotifyContactInquiry(context.Background(), ContactInquiry{
		FirstName: "Ada",
		LastName:  "Okafor",
		Email:     "ada@example.com",
		Message:   "hello",
	})
	if err == nil {
		t.Fatal("expected aggregate error when alert fails")
	}
	if sender.sentTo("ada@example.com") == nil {
		t.Error("confirmation should still be sent when alert fails")
	}
}

func TestNotify_DisabledIsNoop(t *testing.T) {
	svc := NewService(nil, "", nil)
	if err := svc.NotifyContactInquiry(context.Background(), ContactInquiry{Email: "a@b.co"}); err != nil {
		t.Errorf("disabled service should be a no-op, got %v", err)
	}
}

func TestFormatPhone(t *testing.T) {
	if got := formatPhone("2898382982"); got != "+1 289-838-2982" {
		t.Errorf("expected international format, got %q", got)
	}
	if got := formatPhone("not a number"); got != "not a number" {
		t.Errorf("expected raw passthrough, got %q", got)
	}
}
