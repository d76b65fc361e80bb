package content

import (
	"context"
	"net/url"
	"time"

	"github.com/bekwynlaw/law-site-api/internal/observability/metrics"
	"github.com/bekwynlaw/law-site-api/pkg/logging"
)

// DefaultCacheTTL bounds how stale served content can get under normal
// operation. Editors see changes within a minute without the site
// hammering the CMS on every page view.
const DefaultCacheTTL = 60 * time.Second

// Fetcher is the read side of the CMS client.
type Fetcher interface {
	GetJSON(ctx context.Context, path string, query url.Values) (map[string]any, error)
	BaseURL() string
}

// Service serves normalized site content from the CMS through an
// in-process TTL cache. Every read degrades on failure: a CMS outage
// yields empty content, never an error page.
type Service struct {
	fetcher Fetcher
	cache   *ttlCache
	metrics *metrics.ContentMetrics
	logger  *logging.Logger
}

func NewService(fetcher Fetcher, ttl time.Duration, m *metrics.ContentMetrics, logger *logging.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		fetcher: fetcher,
		cache:   newTTLCache(ttl),
		metrics: m,
		logger:  logger,
	}
}

// cached runs fetch through the TTL cache and records the lookup.
// Errors surface only when there is no cached value to fall back on.
func (s *Service) cached(ctx context.Context, entity, key string, fetch func(context.Context) (any, error)) (any, error) {
	value, result, err := s.cache.get(ctx, key, fetch)
	s.metrics.ObserveCache(entity, string(result))
	if result == fetchStale {
		s.logger.Warn("serving stale content after refetch failure", "entity", entity, "key", key)
	}
	return value, err
}

// PracticeAreas returns the full practice-area catalog in CMS order.
// Returns an empty slice when the CMS is unreachable and nothing is
// cached.
func (s *Service) PracticeAreas(ctx context.Context) []PracticeArea {
	value, err := s.cached(ctx, "practice_areas", "practice-areas", func(ctx context.Context) (any, error) {
		query := url.Values{}
		query.Set("populate", "*")
		query.Set("sort", "order:asc")
		body, err := s.fetcher.GetJSON(ctx, "/api/law-practice-areas", query)
		if err != nil {
			return nil, err
		}
		return normalizePracticeAreas(body["data"], s.fetcher.BaseURL()), nil
	})
	if err != nil {
		s.logger.Error("fetch practice areas failed", "error", err)
		return []PracticeArea{}
	}
	areas, _ := value.([]PracticeArea)
	return areas
}

// PracticeAreaBySlug returns one practice area, or nil when the slug
// matches nothing.
func (s *Service) PracticeAreaBySlug(ctx context.Context, slug string) *PracticeArea {
	value, err := s.cached(ctx, "practice_area", "practice-area:"+slug, func(ctx context.Context) (any, error) {
		query := url.Values{}
		query.Set("filters[slug][$eq]", slug)
		query.Set("populate", "*")
		body, err := s.fetcher.GetJSON(ctx, "/api/law-practice-areas", query)
		if err != nil {
			return nil, err
		}
		areas := normalizePracticeAreas(body["data"], s.fetcher.BaseURL())
		if len(areas) == 0 {
			return (*PracticeArea)(nil), nil
		}
		return &areas[0], nil
	})
	if err != nil {
		s.logger.Error("fetch practice area failed", "slug", slug, "error", err)
		return nil
	}
	area, _ := value.(*PracticeArea)
	return area
}

// Testimonials returns testimonials sorted by editorial order, then
// creation time.
func (s *Service) Testimonials(ctx context.Context) []Testimonial {
	value, err := s.cached(ctx, "testimonials", "testimonials", func(ctx context.Context) (any, error) {
		body, err := s.fetcher.GetJSON(ctx, "/api/law-testimonials", nil)
		if err != nil {
			return nil, err
		}
		return normalizeTestimonials(body["data"]), nil
	})
	if err != nil {
		s.logger.Error("fetch testimonials failed", "error", err)
		return []Testimonial{}
	}
	items, _ := value.([]Testimonial)
	return items
}

// BlogPosts returns published posts, newest first per the CMS sort.
func (s *Service) BlogPosts(ctx context.Context) []BlogPost {
	value, err := s.cached(ctx, "blog_posts", "blog-posts", func(ctx context.Context) (any, error) {
		query := url.Values{}
		query.Set("populate", "*")
		query.Set("sort", "publishedDate:desc")
		body, err := s.fetcher.GetJSON(ctx, "/api/law-blog-posts", query)
		if err != nil {
			return nil, err
		}
		return normalizeBlogPosts(body["data"], s.fetcher.BaseURL()), nil
	})
	if err != nil {
		s.logger.Error("fetch blog posts failed", "error", err)
		return []BlogPost{}
	}
	posts, _ := value.([]BlogPost)
	return posts
}

// BlogPostBySlug returns one post, or nil when the slug matches nothing.
func (s *Service) BlogPostBySlug(ctx context.Context, slug string) *BlogPost {
	value, err := s.cached(ctx, "blog_post", "blog-post:"+slug, func(ctx context.Context) (any, error) {
		query := url.Values{}
		query.Set("filters[slug][$eq]", slug)
		query.Set("populate", "*")
		body, err := s.fetcher.GetJSON(ctx, "/api/law-blog-posts", query)
		if err != nil {
			return nil, err
		}
		posts := normalizeBlogPosts(body["data"], s.fetcher.BaseURL())
		if len(posts) == 0 {
			return (*BlogPost)(nil), nil
		}
		return &posts[0], nil
	})
	if err != nil {
		s.logger.Error("fetch blog post failed", "slug", slug, "error", err)
		return nil
	}
	post, _ := value.(*BlogPost)
	return post
}

// SiteSettings returns the site chrome record, or nil when unavailable.
func (s *Service) SiteSettings(ctx context.Context) *SiteSettings {
	value, err := s.cached(ctx, "site_settings", "site-settings", func(ctx context.Context) (any, error) {
		query := url.Values{}
		query.Set("populate", "*")
		body, err := s.fetcher.GetJSON(ctx, "/api/law-site-setting", query)
		if err != nil {
			return nil, err
		}
		return normalizeSiteSettings(body["data"], s.fetcher.BaseURL()), nil
	})
	if err != nil {
		s.logger.Error("fetch site settings failed", "error", err)
		return nil
	}
	settings, _ := value.(*SiteSettings)
	return settings
}

// HomePage returns the home page with its practice-grid sections
// resolved against the full catalog.
func (s *Service) HomePage(ctx context.Context) *Page {
	return s.pageWithAreas(ctx, "home_page", "/api/law-home-page")
}

// AboutPage returns the about page.
func (s *Service) AboutPage(ctx context.Context) *Page {
	return s.page(ctx, "about_page", "/api/law-about-page")
}

// NotaryPage returns the notary services page.
func (s *Service) NotaryPage(ctx context.Context) *Page {
	return s.page(ctx, "notary_page", "/api/law-notary-page")
}

func (s *Service) page(ctx context.Context, entity, path string) *Page {
	value, err := s.cached(ctx, entity, path, func(ctx context.Context) (any, error) {
		query := url.Values{}
		query.Set("populate[sections][populate]", "*")
		body, err := s.fetcher.GetJSON(ctx, path, query)
		if err != nil {
			return nil, err
		}
		return normalizePage(body["data"], s.fetcher.BaseURL()), nil
	})
	if err != nil {
		s.logger.Error("fetch page failed", "path", path, "error", err)
		return nil
	}
	page, _ := value.(*Page)
	return page
}

// pageWithAreas fetches a page and then fills each section that carries
// curated practice-area refs. Resolution happens outside the page cache
// entry so the grid always reflects the current catalog.
func (s *Service) pageWithAreas(ctx context.Context, entity, path string) *Page {
	page := s.page(ctx, entity, path)
	if page == nil {
		return nil
	}
	var catalog []PracticeArea
	resolved := *page
	resolved.Sections = make([]PageSection, len(page.Sections))
	copy(resolved.Sections, page.Sections)
	for i := range resolved.Sections {
		section := &resolved.Sections[i]
		if len(section.areaRefs) == 0 && len(section.PracticeAreas) > 0 {
			continue
		}
		if len(section.areaRefs) == 0 && !isPracticeGrid(section.Component) {
			continue
		}
		if catalog == nil {
			catalog = s.PracticeAreas(ctx)
		}
		section.PracticeAreas = selectPracticeAreas(section.areaRefs, section.PracticeAreas, catalog)
	}
	return &resolved
}

func isPracticeGrid(component string) bool {
	switch component {
	case "law.practice-section", "sections.practice-grid", "sections.practice-areas":
		return true
	}
	return false
}
