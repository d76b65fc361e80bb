package intake

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/bekwynlaw/law-site-api/internal/notify"
	"github.com/bekwynlaw/law-site-api/internal/observability/metrics"
	"github.com/bekwynlaw/law-site-api/internal/strapi"
	"github.com/bekwynlaw/law-site-api/pkg/logging"
)

// InquiryStore persists leads to the external store of record.
type InquiryStore interface {
	HasToken() bool
	CreateInquiry(ctx context.Context, inquiry strapi.Inquiry) error
}

// Notifier sends the best-effort email pair for a lead.
type Notifier interface {
	Enabled() bool
	NotifyContactInquiry(ctx context.Context, inquiry notify.ContactInquiry) error
	NotifyNotaryInquiry(ctx context.Context, inquiry notify.NotaryInquiry) error
}

// Handler handles the contact and notary form endpoints.
//
// The two endpoints are deliberately asymmetric: a store failure is
// fatal for the contact form (502) but not for the notary form, which
// falls back to the email record and reports success to the submitter.
// That asymmetry is a product decision, not a bug; keep it.
type Handler struct {
	store   InquiryStore
	notify  Notifier
	metrics *metrics.IntakeMetrics
	logger  *logging.Logger
}

// NewHandler creates an intake handler.
func NewHandler(store InquiryStore, notifier Notifier, m *metrics.IntakeMetrics, logger *logging.Logger) *Handler {
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

const (
	sourceLawWebsite    = "lawwebsite"
	sourceNotaryWebsite = "notary-website"
)

// SubmitContact handles POST /api/contact.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("contact: failed to decode request", "error", err)
		h.metrics.ObserveSubmission("contact", "rejected")
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "errors": []string{"Invalid request body."}})
		return
	}

	// Bots that fill the hidden field get a success response and
	// nothing else: no store write, no email, no hint they were caught.
	if req.HoneypotTriggered() {
		h.metrics.ObserveSubmission("contact", "honeypot")
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		h.metrics.ObserveSubmission("contact", "rejected")
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "errors": errs})
		return
	}

	if !h.store.HasToken() {
		h.logger.Error("contact: STRAPI_TOKEN is missing")
		h.metrics.ObserveSubmission("contact", "config_error")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": "Missing STRAPI_TOKEN on server"})
		return
	}

	serviceLabel, storeValue := resolveContactService(req.Service)

	message := req.Message
	if serviceLabel != nil {
		message = "Requested area: " + *serviceLabel + "\n\n" + req.Message
	}

	inquiry := strapi.Inquiry{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     normalizePhone(req.Phone),
		Service:   storeValue,
		Message:   message,
		Source:    sourceLawWebsite,
	}

	if err := h.store.CreateInquiry(r.Context(), inquiry); err != nil {
		h.logger.Error("contact: failed to persist inquiry", "error", err)
		h.metrics.ObserveSubmission("contact", "persist_failed")
		var upstream *strapi.UpstreamError
		resp := map[string]any{"ok": false, "error": "Failed to persist inquiry"}
		if errors.As(err, &upstream) {
			resp["detail"] = upstream.Detail
		}
		writeJSON(w, http.StatusBadGateway, resp)
		return
	}

	h.metrics.ObserveSubmission("contact", "accepted")
	h.sendContactNotification(r.Context(), req, serviceLabel)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// SubmitNotary handles POST /api/notary.
func (h *Handler) SubmitNotary(w http.ResponseWriter, r *http.Request) {
	var req NotaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("notary: failed to decode request", "error", err)
		h.metrics.ObserveSubmission("notary", "rejected")
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "errors": []string{"Invalid request body."}})
		return
	}

	if req.HoneypotTriggered() {
		h.metrics.ObserveSubmission("notary", "honeypot")
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		h.metrics.ObserveSubmission("notary", "rejected")
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "errors": errs})
		return
	}

	if !h.store.HasToken() {
		h.logger.Error("notary: STRAPI_TOKEN is missing")
		h.metrics.ObserveSubmission("notary", "config_error")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": "Server configuration error"})
		return
	}

	serviceLabel, storeValue := resolveNotaryService(req.Service)
	firstName, lastName := req.SplitName()

	var serviceLine string
	if serviceLabel != nil {
		serviceLine = "Service: " + *serviceLabel
	}
	message := joinNonEmpty("\n", "NOTARY SERVICE INQUIRY", serviceLine, req.Message)

	phone := strings.TrimSpace(req.Phone)
	inquiry := strapi.Inquiry{
		FirstName: firstName,
		LastName:  lastName,
		Email:     req.Email,
		Phone:     normalizePhone(phone),
		Service:   storeValue,
		Message:   message,
		Source:    sourceNotaryWebsite,
	}

	if err := h.store.CreateInquiry(r.Context(), inquiry); err != nil {
		h.logger.Error("notary: failed to persist inquiry, falling back to email", "error", err)
		h.metrics.ObserveSubmission("notary", "degraded")

		// The email record stands in for the store record here, so the
		// submitter still sees success. The diagnostic travels in the
		// body for the operators who read it.
		h.sendNotaryNotification(r.Context(), req, serviceLabel)

		var upstream *strapi.UpstreamError
		resp := map[string]any{
			"ok":    false,
			"error": "Failed to save inquiry. We've received your message via email.",
		}
		if errors.As(err, &upstream) {
			resp["detail"] = upstream.Detail
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	h.metrics.ObserveSubmission("notary", "accepted")
	h.sendNotaryNotification(r.Context(), req, serviceLabel)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) sendContactNotification(ctx context.Context, req ContactRequest, serviceLabel *string) {
	if h.notify == nil || !h.notify.Enabled() {
		h.metrics.ObserveNotification("contact", "skipped")
		return
	}
	label := ""
	if serviceLabel != nil {
		label = *serviceLabel
	}
	err := h.notify.NotifyContactInquiry(ctx, notify.ContactInquiry{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        strings.TrimSpace(req.Phone),
		ServiceLabel: label,
		Message:      req.Message,
	})
	if err != nil {
		h.logger.Error("contact: failed to send notification", "error", err)
		h.metrics.ObserveNotification("contact", "failed")
		return
	}
	h.metrics.ObserveNotification("contact", "sent")
}

func (h *Handler) sendNotaryNotification(ctx context.Context, req NotaryRequest, serviceLabel *string) {
	if h.notify == nil || !h.notify.Enabled() {
		h.metrics.ObserveNotification("notary", "skipped")
		return
	}
	label := ""
	if serviceLabel != nil {
		label = *serviceLabel
	}
	err := h.notify.NotifyNotaryInquiry(ctx, notify.NotaryInquiry{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        strings.TrimSpace(req.Phone),
		ServiceLabel: label,
		Message:      req.Message,
	})
	if err != nil {
		h.logger.Error("notary: failed to send notification", "error", err)
		h.metrics.ObserveNotification("notary", "failed")
		return
	}
	h.metrics.ObserveNotification("notary", "sent")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
