package content

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bekwynlaw/law-site-api/pkg/logging"
)

// Handler serves the normalized content read API consumed by the site
// frontend. Collection endpoints always answer 200, empty when the CMS
// is down; slug endpoints answer 404 for unknown slugs.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

func (h *Handler) PracticeAreas(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.PracticeAreas(r.Context()))
}

func (h *Handler) PracticeAreaBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	area := h.service.PracticeAreaBySlug(r.Context(), slug)
	if area == nil {
		h.writeNotFound(w, "Practice area not found.")
		return
	}
	h.writeJSON(w, http.StatusOK, area)
}

func (h *Handler) Testimonials(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Testimonials(r.Context()))
}

func (h *Handler) BlogPosts(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.BlogPosts(r.Context()))
}

func (h *Handler) BlogPostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post := h.service.BlogPostBySlug(r.Context(), slug)
	if post == nil {
		h.writeNotFound(w, "Post not found.")
		return
	}
	h.writeJSON(w, http.StatusOK, post)
}

func (h *Handler) SiteSettings(w http.ResponseWriter, r *http.Request) {
	settings := h.service.SiteSettings(r.Context())
	if settings == nil {
		settings = &SiteSettings{}
	}
	h.writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, h.service.HomePage(r.Context()))
}

func (h *Handler) AboutPage(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, h.service.AboutPage(r.Context()))
}

func (h *Handler) NotaryPage(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, h.service.NotaryPage(r.Context()))
}

func (h *Handler) writePage(w http.ResponseWriter, page *Page) {
	if page == nil {
		page = &Page{Sections: []PageSection{}}
	}
	h.writeJSON(w, http.StatusOK, page)
}

func (h *Handler) writeNotFound(w http.ResponseWriter, message string) {
	h.writeJSON(w, http.StatusNotFound, map[string]string{"error": message})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("write content response failed", "error", err)
	}
}
