package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTestimonialsSortsByOrderThenCreatedAt(t *testing.T) {
	payload := []any{
		map[string]any{"quote": "no order, older", "createdAt": "2024-01-01T00:00:00Z"},
		map[string]any{"quote": "second", "order": float64(2)},
		map[string]any{"quote": "first", "order": float64(1)},
		map[string]any{"quote": "no order, newer", "createdAt": "2024-06-01T00:00:00Z"},
	}
	out := normalizeTestimonials(payload)
	require.Len(t, out, 4)
	assert.Equal(t, "first", out[0].Quote)
	assert.Equal(t, "second", out[1].Quote)
	assert.Equal(t, "no order, older", out[2].Quote)
	assert.Equal(t, "no order, newer", out[3].Quote)
}

func TestNormalizeTestimonialDropsQuoteless(t *testing.T) {
	out := normalizeTestimonials([]any{
		map[string]any{"name": "A. Client"},
		map[string]any{"quote": "Great service.", "author": "B. Client", "position": "Director"},
	})
	require.Len(t, out, 1)
	assert.Equal(t, "B. Client", out[0].Name)
	assert.Equal(t, "Director", out[0].Role)
}

func TestNormalizeBlogPostDerivesExcerpt(t *testing.T) {
	post := normalizeBlogPost(map[string]any{
		"title":   "Understanding Spousal Sponsorship",
		"slug":    "spousal-sponsorship",
		"content": "<p>The sponsorship process has <em>several</em> stages.</p>",
	}, "")
	require.NotNil(t, post)
	assert.Equal(t, "The sponsorship process has several stages.", post.Excerpt)
}

func TestNormalizeBlogPostExcerptTruncates(t *testing.T) {
	long := strings.Repeat("word ", 100)
	post := normalizeBlogPost(map[string]any{
		"slug":    "long-post",
		"content": "<p>" + long + "</p>",
	}, "")
	require.NotNil(t, post)
	assert.True(t, strings.HasSuffix(post.Excerpt, "…"))
	assert.LessOrEqual(t, len([]rune(post.Excerpt)), excerptLimit+1)
}

func TestNormalizeBlogPostExplicitExcerptWins(t *testing.T) {
	post := normalizeBlogPost(map[string]any{
		"slug":    "post",
		"excerpt": "Hand-written summary.",
		"content": "<p>Full body.</p>",
	}, "")
	require.NotNil(t, post)
	assert.Equal(t, "Hand-written summary.", post.Excerpt)
}

func TestNormalizeBlogPostPublishedDateFallsBackToPublishedAt(t *testing.T) {
	post := normalizeBlogPost(map[string]any{
		"slug":        "post",
		"publishedAt": "2024-03-10T08:00:00Z",
	}, "")
	require.NotNil(t, post)
	assert.Equal(t, "2024-03-10T08:00:00Z", post.PublishedDate)
}

func TestNormalizeSiteSettings(t *testing.T) {
	settings := normalizeSiteSettings(map[string]any{
		"data": map[string]any{
			"attributes": map[string]any{
				"brandName": "Bekwyn Law",
				"tagline":   "Serving Ontario families",
				"navigation": []any{
					map[string]any{"label": "Home", "url": "/"},
					map[string]any{
						"label": "Practice Areas",
						"url":   "/practice-areas",
						"dropdown": []any{
							map[string]any{"label": "Family Law", "url": "/practice-areas/family-law"},
						},
					},
					map[string]any{"icon": "orphan"},
				},
				"topContacts": []any{
					map[string]any{"label": "Phone", "value": "+1 (289) 838-2982", "href": "tel:+12898382982"},
				},
				"footer": map[string]any{
					"copyright":   "© 2026 Bekwyn Law PC",
					"companyName": "Bekwyn Law Professional Corporation",
				},
			},
		},
	}, cmsBase)
	require.NotNil(t, settings)
	assert.Equal(t, "Bekwyn Law", settings.BrandName)
	require.Len(t, settings.Navigation, 2)
	assert.Equal(t, "Practice Areas", settings.Navigation[1].Label)
	require.Len(t, settings.Navigation[1].Dropdown, 1)
	require.Len(t, settings.TopContacts, 1)
	assert.Equal(t, "tel:+12898382982", settings.TopContacts[0].Href)
	require.NotNil(t, settings.Footer)
	assert.Equal(t, "© 2026 Bekwyn Law PC", settings.Footer.Copyright)
}

func TestNormalizeSiteSettingsFooterComponentFieldNames(t *testing.T) {
	// The footer component in the CMS carries FooterCopyright,
	// FooterLinks, and ContactDetails; none of them may be lost.
	settings := normalizeSiteSettings(map[string]any{
		"brandName": "Bekwyn Law",
		"footer": map[string]any{
			"FooterCopyright": "© 2026 Bekwyn Law PC. All rights reserved.",
			"companyName":     "Bekwyn Law Professional Corporation",
			"FooterLinks": []any{
				map[string]any{"label": "Privacy Policy", "url": "/privacy"},
				map[string]any{"label": "Contact", "url": "/contact"},
			},
			"ContactDetails": []any{
				map[string]any{"label": "Phone", "value": "+1 (289) 838-2982", "href": "tel:+12898382982"},
				map[string]any{"label": "Email", "value": "info@bekwynlaw.com"},
			},
		},
	}, cmsBase)
	require.NotNil(t, settings)
	require.NotNil(t, settings.Footer)
	assert.Equal(t, "© 2026 Bekwyn Law PC. All rights reserved.", settings.Footer.Copyright)
	require.Len(t, settings.Footer.Links, 2)
	assert.Equal(t, "Privacy Policy", settings.Footer.Links[0].Label)
	require.Len(t, settings.Footer.Contacts, 2)
	assert.Equal(t, "+1 (289) 838-2982", settings.Footer.Contacts[0].Value)
}

func TestNormalizePracticeAreaIDOnlyStubSurvives(t *testing.T) {
	area := normalizePracticeArea(map[string]any{"id": float64(7)}, "")
	require.NotNil(t, area)
	assert.Equal(t, int64(7), area.ID)
	assert.Empty(t, area.Slug)
	assert.Empty(t, area.Title)
}

func TestNormalizeSectionComponents(t *testing.T) {
	section := normalizeSection(map[string]any{
		"__component": "sections.hero",
		"eyebrow":     "Bekwyn Law PC",
		"title":       "Clarity in difficult moments",
		"description": "Immigration, family, and criminal defence.",
		"primaryCta":  map[string]any{"label": "Book a consultation", "url": "/contact"},
		"image":       map[string]any{"url": "/uploads/hero.jpg"},
	}, cmsBase)
	require.NotNil(t, section)
	assert.Equal(t, "sections.hero", section.Component)
	assert.Equal(t, "Clarity in difficult moments", section.Title)
	require.NotNil(t, section.PrimaryCTA)
	assert.Equal(t, "Book a consultation", section.PrimaryCTA.Label)
	require.NotNil(t, section.Image)
	assert.Equal(t, cmsBase+"/uploads/hero.jpg", section.Image.URL)
}

func TestNormalizeSectionSplitsRefsFromInlineAreas(t *testing.T) {
	section := normalizeSection(map[string]any{
		"__component": "sections.practice-grid",
		"practiceAreas": []any{
			"family-law",
			map[string]any{"slug": "inline-full", "title": "Inline Full Record"},
		},
	}, cmsBase)
	require.NotNil(t, section)
	assert.Equal(t, []any{"family-law"}, section.areaRefs)
	require.Len(t, section.PracticeAreas, 1)
	assert.Equal(t, "Inline Full Record", section.PracticeAreas[0].Title)
}

func TestNormalizeSectionWithoutComponentDropped(t *testing.T) {
	assert.Nil(t, normalizeSection(map[string]any{"title": "orphan"}, cmsBase))
}

func TestNormalizePage(t *testing.T) {
	page := normalizePage(map[string]any{
		"data": map[string]any{
			"id": float64(1),
			"attributes": map[string]any{
				"sections": []any{
					map[string]any{"__component": "sections.hero", "title": "Hero"},
					map[string]any{"title": "no component"},
				},
			},
		},
	}, cmsBase)
	require.NotNil(t, page)
	require.Len(t, page.Sections, 1)
	assert.Equal(t, "Hero", page.Sections[0].Title)
}
