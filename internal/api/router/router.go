// Package router wires the HTTP surface: form intake, the content read
// API, and operational endpoints.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bekwynlaw/law-site-api/internal/content"
	httpmiddleware "github.com/bekwynlaw/law-site-api/internal/http/middleware"
	"github.com/bekwynlaw/law-site-api/internal/intake"
	"github.com/bekwynlaw/law-site-api/internal/newsletter"
	"github.com/bekwynlaw/law-site-api/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	IntakeHandler      *intake.Handler
	NewsletterHandler  *newsletter.Handler
	ContentHandler     *content.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Form endpoints sit behind a per-IP limiter; zero values fall back
	// to defaults sized for a small firm's site traffic.
	FormRateLimit float64
	FormRateBurst int
}

const (
	defaultFormRateLimit = 0.5 // one submission per 2s sustained
	defaultFormRateBurst = 5
)

// New creates the Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	rate := cfg.FormRateLimit
	if rate <= 0 {
		rate = defaultFormRateLimit
	}
	burst := cfg.FormRateBurst
	if burst <= 0 {
		burst = defaultFormRateBurst
	}

	// Write side: the three public forms.
	r.Group(func(forms chi.Router) {
		forms.Use(httpmiddleware.RateLimit(rate, burst))
		if cfg.IntakeHandler != nil {
			forms.Post("/api/contact", cfg.IntakeHandler.SubmitContact)
			forms.Post("/api/notary", cfg.IntakeHandler.SubmitNotary)
		}
		if cfg.NewsletterHandler != nil {
			forms.Post("/api/newsletter", cfg.NewsletterHandler.Subscribe)
		}
	})

	// Read side: normalized CMS content for the frontend.
	if cfg.ContentHandler != nil {
		r.Route("/api/content", func(c chi.Router) {
			c.Get("/practice-areas", cfg.ContentHandler.PracticeAreas)
			c.Get("/practice-areas/{slug}", cfg.ContentHandler.PracticeAreaBySlug)
			c.Get("/testimonials", cfg.ContentHandler.Testimonials)
			c.Get("/blog-posts", cfg.ContentHandler.BlogPosts)
			c.Get("/blog-posts/{slug}", cfg.ContentHandler.BlogPostBySlug)
			c.Get("/site-settings", cfg.ContentHandler.SiteSettings)
			c.Get("/home-page", cfg.ContentHandler.HomePage)
			c.Get("/about-page", cfg.ContentHandler.AboutPage)
			c.Get("/notary-page", cfg.ContentHandler.NotaryPage)
		})
	}

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
