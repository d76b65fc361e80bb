package newsletter

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bekwynlaw/law-site-api/internal/notify"
	"github.com/bekwynlaw/law-site-api/internal/observability/metrics"
	"github.com/bekwynlaw/law-site-api/internal/strapi"
	"github.com/bekwynlaw/law-site-api/pkg/logging"
)

// SubscriberStore upserts newsletter subscribers in the external store.
type SubscriberStore interface {
	HasToken() bool
	UpsertSubscriber(ctx context.Context, sub strapi.Subscriber) (strapi.SubscribeStatus, error)
}

// Notifier sends the best-effort signup email pair.
type Notifier interface {
	Enabled() bool
	NotifyNewsletterSignup(ctx context.Context, signup notify.NewsletterSignup) error
}

// Handler handles POST /api/newsletter.
type Handler struct {
	store   SubscriberStore
	notify  Notifier
	metrics *metrics.IntakeMetrics
	logger  *logging.Logger
}

// NewHandler creates a newsletter handler.
func NewHandler(store SubscriberStore, notifier Notifier, m *metrics.IntakeMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		store:   store,
		notify:  notifier,
		metrics: m,
		logger:  logger,
	}
}

const maxFieldLen = 120

// SubscribeRequest is the signup payload. Source falls back to the
// X-Form-Source header when the body leaves it empty.
type SubscribeRequest struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// normalize trims and bounds the optional fields and lowercases the
// email, returning false when the email is not syntactically valid.
func (r *SubscribeRequest) normalize() bool {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = clampField(r.Name)
	r.Source = clampField(r.Source)
	return emailPattern.MatchString(r.Email)
}

func clampField(value string) string {
	value = strings.TrimSpace(value)
	// Clamp on runes so a multi-byte character at the boundary is never
	// split into invalid UTF-8.
	if runes := []rune(value); len(runes) > maxFieldLen {
		value = string(runes[:maxFieldLen])
	}
	return value
}

const (
	msgCreated      = "Thanks for subscribing! We'll keep you updated with legal insights."
	msgExists       = "You're already subscribed. Thank you for staying connected."
	msgInvalidEmail = "Please enter a valid email address."
	msgUnavailable  = "We couldn't add you right now. Please try again later."
)

// Subscribe handles POST /api/newsletter.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.ObserveSubmission("newsletter", "rejected")
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": msgInvalidEmail})
		return
	}

	if req.Source == "" {
		req.Source = r.Header.Get("X-Form-Source")
	}

	if !req.normalize() {
		h.metrics.ObserveSubmission("newsletter", "rejected")
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": msgInvalidEmail})
		return
	}

	if !h.store.HasToken() {
		h.logger.Error("newsletter: storage is not configured (missing STRAPI_TOKEN)")
		h.metrics.ObserveSubmission("newsletter", "config_error")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": msgUnavailable})
		return
	}

	status, err := h.store.UpsertSubscriber(r.Context(), strapi.Subscriber{
		Email:  req.Email,
		Name:   nilIfEmpty(req.Name),
		Source: nilIfEmpty(req.Source),
	})
	if err != nil {
		h.logger.Error("newsletter: subscription failed", "error", err)
		h.metrics.ObserveSubmission("newsletter", "persist_failed")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": msgUnavailable})
		return
	}

	h.metrics.ObserveSubmission("newsletter", string(status))
	h.sendNotification(r.Context(), req)

	message := msgCreated
	if status == strapi.SubscribeExists {
		message = msgExists
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": string(status), "message": message})
}

func (h *Handler) sendNotification(ctx context.Context, req SubscribeRequest) {
	if h.notify == nil || !h.notify.Enabled() {
		h.metrics.ObserveNotification("newsletter", "skipped")
		return
	}
	err := h.notify.NotifyNewsletterSignup(ctx, notify.NewsletterSignup{
		Email:  req.Email,
		Name:   req.Name,
		Source: req.Source,
	})
	if err != nil {
		h.logger.Error("newsletter: failed to send notification", "error", err)
		h.metrics.ObserveNotification("newsletter", "failed")
		return
	}
	h.metrics.ObserveNotification("newsletter", "sent")
}

func nilIfEmpty(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
