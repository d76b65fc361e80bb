package content

import "sort"

// PracticeArea is one practice-area record. Title and Slug are the
// minimum identity; everything else is optional.
type PracticeArea struct {
	ID              int64  `json:"id,omitempty"`
	DocumentID      string `json:"documentId,omitempty"`
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Summary         string `json:"summary,omitempty"`
	Icon            string `json:"icon,omitempty"`
	Intro           string `json:"intro,omitempty"`
	Body            string `json:"body,omitempty"`
	Order           *int64 `json:"order,omitempty"`
	HeroImage       *Image `json:"heroImage,omitempty"`
	BackgroundImage *Image `json:"backgroundImage,omitempty"`
}

// normalizePracticeArea maps one CMS node to a PracticeArea, or nil
// when the record lacks both a slug and a title.
func normalizePracticeArea(v any, baseURL string) *PracticeArea {
	node := unwrap(v)
	if node == nil {
		return nil
	}
	area := PracticeArea{
		Title:           stringField(node, "title", "Title", "name"),
		Slug:            stringField(node, "slug", "Slug"),
		Summary:         stringField(node, "summary", "cardSummary", "description", "Description"),
		Icon:            stringField(node, "icon", "Icon"),
		Intro:           stringField(node, "intro", "Intro", "lead"),
		Body:            stringField(node, "body", "Body", "content"),
		DocumentID:      stringField(node, "documentId"),
		Order:           intPtr(node, "order", "Order", "sortOrder"),
		HeroImage:       imageField(node, baseURL, "heroImage", "HeroImage", "image"),
		BackgroundImage: imageField(node, baseURL, "backgroundImage", "BackgroundImage"),
	}
	if id, ok := intField(node, "id"); ok {
		area.ID = id
	}
	// Identity is a slug or an id; an id-only stub still resolves
	// against the catalog downstream. Title alone also keeps the record
	// so hand-entered inline entries survive.
	if area.Slug == "" && area.ID == 0 && area.Title == "" {
		return nil
	}
	return &area
}

// normalizePracticeAreas maps a collection response, dropping records
// without identity and preserving response order.
func normalizePracticeAreas(v any, baseURL string) []PracticeArea {
	items := unwrapList(v)
	areas := make([]PracticeArea, 0, len(items))
	for _, item := range items {
		if area := normalizePracticeArea(item, baseURL); area != nil {
			areas = append(areas, *area)
		}
	}
	return areas
}

// Testimonial is one client testimonial.
type Testimonial struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	Quote     string `json:"quote"`
	Rating    *int64 `json:"rating,omitempty"`
	Order     *int64 `json:"order,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func normalizeTestimonial(v any) *Testimonial {
	node := unwrap(v)
	if node == nil {
		return nil
	}
	t := Testimonial{
		Name:      stringField(node, "name", "Name", "author"),
		Role:      stringField(node, "role", "Role", "position"),
		Quote:     stringField(node, "quote", "Quote", "text", "content"),
		Rating:    intPtr(node, "rating", "Rating"),
		Order:     intPtr(node, "order", "Order"),
		CreatedAt: stringField(node, "createdAt"),
	}
	if id, ok := intField(node, "id"); ok {
		t.ID = id
	}
	if t.Quote == "" {
		return nil
	}
	return &t
}

// normalizeTestimonials maps a collection response and sorts it by the
// editorial order field, falling back to creation time for records that
// share (or lack) an order value.
func normalizeTestimonials(v any) []Testimonial {
	items := unwrapList(v)
	out := make([]Testimonial, 0, len(items))
	for _, item := range items {
		if t := normalizeTestimonial(item); t != nil {
			out = append(out, *t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := out[i].Order, out[j].Order
		switch {
		case oi != nil && oj != nil && *oi != *oj:
			return *oi < *oj
		case oi != nil && oj == nil:
			return true
		case oi == nil && oj != nil:
			return false
		}
		return out[i].CreatedAt < out[j].CreatedAt
	})
	return out
}

// BlogPost is one article. Slug is the routing key; Content carries the
// rich-text body and Excerpt is derived from it when absent.
type BlogPost struct {
	ID            int64  `json:"id,omitempty"`
	DocumentID    string `json:"documentId,omitempty"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Excerpt       string `json:"excerpt,omitempty"`
	Content       string `json:"content,omitempty"`
	Author        string `json:"author,omitempty"`
	Category      string `json:"category,omitempty"`
	ReadTime      string `json:"readTime,omitempty"`
	PublishedDate string `json:"publishedDate,omitempty"`
	HeroImage     *Image `json:"heroImage,omitempty"`
}

const excerptLimit = 180

func normalizeBlogPost(v any, baseURL string) *BlogPost {
	node := unwrap(v)
	if node == nil {
		return nil
	}
	post := BlogPost{
		Title:         stringField(node, "title", "Title"),
		Slug:          stringField(node, "slug", "Slug"),
		Excerpt:       stringField(node, "excerpt", "Excerpt", "summary"),
		Content:       stringField(node, "content", "Content", "body"),
		Author:        stringField(node, "author", "Author"),
		Category:      stringField(node, "category", "Category"),
		ReadTime:      stringField(node, "readTime", "ReadTime"),
		PublishedDate: stringField(node, "publishedDate", "publishedAt", "date"),
		DocumentID:    stringField(node, "documentId"),
		HeroImage:     imageField(node, baseURL, "heroImage", "image", "cover"),
	}
	if id, ok := intField(node, "id"); ok {
		post.ID = id
	}
	if post.Excerpt == "" && post.Content != "" {
		text := []rune(StripHTML(post.Content))
		if len(text) > excerptLimit {
			post.Excerpt = string(text[:excerptLimit]) + "…"
		} else {
			post.Excerpt = string(text)
		}
	}
	if post.Slug == "" && post.Title == "" {
		return nil
	}
	return &post
}

func normalizeBlogPosts(v any, baseURL string) []BlogPost {
	items := unwrapList(v)
	posts := make([]BlogPost, 0, len(items))
	for _, item := range items {
		if post := normalizeBlogPost(item, baseURL); post != nil {
			posts = append(posts, *post)
		}
	}
	return posts
}
