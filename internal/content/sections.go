package content

// Page is one single-type page record: an ordered list of sections.
type Page struct {
	ID       int64         `json:"id,omitempty"`
	Sections []PageSection `json:"sections"`
}

// PageSection is one dynamic-zone block. Component discriminates the
// block kind (for example "sections.hero" or "sections.practice-grid");
// the remaining fields are a union of what the block kinds carry, with
// unused ones omitted from the JSON output.
type PageSection struct {
	Component     string         `json:"component"`
	ID            int64          `json:"id,omitempty"`
	Eyebrow       string         `json:"eyebrow,omitempty"`
	Title         string         `json:"title,omitempty"`
	Subtitle      string         `json:"subtitle,omitempty"`
	Description   string         `json:"description,omitempty"`
	Body          string         `json:"body,omitempty"`
	PhoneLabel    string         `json:"phoneLabel,omitempty"`
	PhoneNumber   string         `json:"phoneNumber,omitempty"`
	Image         *Image         `json:"image,omitempty"`
	Background    *Image         `json:"background,omitempty"`
	PrimaryCTA    *Button        `json:"primaryCta,omitempty"`
	SecondaryCTA  *Button        `json:"secondaryCta,omitempty"`
	Bullets       []Bullet       `json:"bullets,omitempty"`
	Steps         []ProcessStep  `json:"steps,omitempty"`
	Contacts      []ContactPoint `json:"contacts,omitempty"`
	FormFields    []FormField    `json:"formFields,omitempty"`
	Testimonials  []Testimonial  `json:"testimonials,omitempty"`
	PracticeAreas []PracticeArea `json:"practiceAreas,omitempty"`

	// areaRefs holds the raw curated reference list for practice-grid
	// sections; the service resolves it against the full catalog after
	// normalization. Inline full records, when populated, land directly
	// in PracticeAreas.
	areaRefs []any
}

// Button is one call-to-action link.
type Button struct {
	Label   string `json:"label"`
	URL     string `json:"url,omitempty"`
	Variant string `json:"variant,omitempty"`
	Icon    string `json:"icon,omitempty"`
}

// Bullet is one icon/title/description item in a feature or values list.
type Bullet struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProcessStep is one numbered step in a how-it-works block.
type ProcessStep struct {
	Step        *int64 `json:"step,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// FormField describes one input of a CMS-driven form block.
type FormField struct {
	Label       string `json:"label"`
	FieldType   string `json:"fieldType,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

func normalizePage(v any, baseURL string) *Page {
	node := unwrap(v)
	if node == nil {
		return nil
	}
	page := Page{Sections: []PageSection{}}
	if id, ok := intField(node, "id"); ok {
		page.ID = id
	}
	for _, item := range listField(node, "sections", "Sections", "blocks") {
		if section := normalizeSection(item, baseURL); section != nil {
			page.Sections = append(page.Sections, *section)
		}
	}
	return &page
}

func normalizeSection(v any, baseURL string) *PageSection {
	node := unwrap(v)
	if node == nil {
		return nil
	}
	section := PageSection{
		Component:   stringField(node, "__component"),
		Eyebrow:     stringField(node, "eyebrow", "Eyebrow", "kicker"),
		Title:       stringField(node, "title", "Title", "heading", "Heading"),
		Subtitle:    stringField(node, "subtitle", "Subtitle", "subheading"),
		Description: stringField(node, "description", "Description", "text"),
		Body:        stringField(node, "body", "Body", "content"),
		PhoneLabel:  stringField(node, "phoneLabel", "PhoneLabel"),
		PhoneNumber: stringField(node, "phoneNumber", "PhoneNumber", "phone"),
		Image:       imageField(node, baseURL, "image", "Image", "heroImage"),
		Background:  imageField(node, baseURL, "background", "backgroundImage"),
		Bullets:     normalizeBullets(listField(node, "bullets", "Bullets", "items", "features", "values")),
		Steps:       normalizeSteps(listField(node, "steps", "Steps")),
		Contacts:    normalizeContactPoints(listField(node, "contacts", "Contacts", "contactPoints")),
		FormFields:  normalizeFormFields(listField(node, "formFields", "fields")),
	}
	if id, ok := intField(node, "id"); ok {
		section.ID = id
	}
	section.PrimaryCTA = normalizeButton(node["primaryCta"], node["primaryButton"], node["cta"])
	section.SecondaryCTA = normalizeButton(node["secondaryCta"], node["secondaryButton"])
	for _, item := range listField(node, "testimonials", "Testimonials") {
		if t := normalizeTestimonial(item); t != nil {
			section.Testimonials = append(section.Testimonials, *t)
		}
	}

	// A practice grid may carry the curated list as lightweight refs
	// (ids, documentIds, or slugs), as fully-populated inline records,
	// or both. Full records are kept; refs wait for catalog resolution.
	section.areaRefs = rawList(node, "practiceAreaRefs", "areaRefs", "refs")
	for _, item := range listField(node, "practiceAreas", "PracticeAreas", "areas") {
		if looksLikeRef(item) {
			section.areaRefs = append(section.areaRefs, item)
			continue
		}
		if area := normalizePracticeArea(item, baseURL); area != nil {
			section.PracticeAreas = append(section.PracticeAreas, *area)
		}
	}
	if section.Component == "" {
		return nil
	}
	return &section
}

// rawList returns the first present list field without normalization.
func rawList(node map[string]any, names ...string) []any {
	for _, name := range names {
		if items := unwrapList(node[name]); items != nil {
			return items
		}
	}
	return nil
}

func normalizeButton(candidates ...any) *Button {
	for _, v := range candidates {
		node := unwrap(v)
		if node == nil {
			continue
		}
		btn := Button{
			Label:   stringField(node, "label", "Label", "text", "title"),
			URL:     stringField(node, "url", "URL", "href", "link"),
			Variant: stringField(node, "variant", "Variant", "style"),
			Icon:    stringField(node, "icon", "Icon"),
		}
		if btn.Label == "" && btn.URL == "" {
			continue
		}
		return &btn
	}
	return nil
}

func normalizeBullets(items []any) []Bullet {
	out := make([]Bullet, 0, len(items))
	for _, item := range items {
		node := unwrap(item)
		if node == nil {
			continue
		}
		b := Bullet{
			Icon:        stringField(node, "icon", "Icon"),
			Title:       stringField(node, "title", "Title", "label", "heading"),
			Description: stringField(node, "description", "Description", "text"),
		}
		if b.Title == "" && b.Description == "" {
			continue
		}
		out = append(out, b)
	}
	return out
}

func normalizeSteps(items []any) []ProcessStep {
	out := make([]ProcessStep, 0, len(items))
	for _, item := range items {
		node := unwrap(item)
		if node == nil {
			continue
		}
		s := ProcessStep{
			Step:        intPtr(node, "step", "stepNumber", "number"),
			Icon:        stringField(node, "icon", "Icon"),
			Title:       stringField(node, "title", "Title"),
			Description: stringField(node, "description", "Description", "text"),
		}
		if s.Title == "" && s.Description == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func normalizeFormFields(items []any) []FormField {
	out := make([]FormField, 0, len(items))
	for _, item := range items {
		node := unwrap(item)
		if node == nil {
			continue
		}
		f := FormField{
			Label:       stringField(node, "label", "Label", "name"),
			FieldType:   stringField(node, "fieldType", "type"),
			Placeholder: stringField(node, "placeholder", "Placeholder"),
			Required:    boolField(node, "required", "Required"),
		}
		if f.Label == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}
