package content

// SiteSettings is the single-type record driving the site chrome:
// brand identity, header navigation, contact strip, and footer.
type SiteSettings struct {
	BrandName   string           `json:"brandName,omitempty"`
	Tagline     string           `json:"tagline,omitempty"`
	Logo        *Image           `json:"logo,omitempty"`
	TopContacts []ContactPoint   `json:"topContacts,omitempty"`
	SocialLinks []SocialLink     `json:"socialLinks,omitempty"`
	Navigation  []NavigationItem `json:"navigation,omitempty"`
	Footer      *Footer          `json:"footer,omitempty"`
}

// NavigationItem is one header or footer link, optionally with a
// dropdown of child links.
type NavigationItem struct {
	Label    string           `json:"label"`
	URL      string           `json:"url"`
	Icon     string           `json:"icon,omitempty"`
	Dropdown []NavigationItem `json:"dropdown,omitempty"`
}

// ContactPoint is one labelled contact detail (phone, email, address).
type ContactPoint struct {
	Label string `json:"label,omitempty"`
	Value string `json:"value"`
	Href  string `json:"href,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// SocialLink is one social-media profile link.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon,omitempty"`
}

// Footer carries the footer block of the site settings.
type Footer struct {
	Copyright      string           `json:"copyright,omitempty"`
	CompanyName    string           `json:"companyName,omitempty"`
	CompanyTagline string           `json:"companyTagline,omitempty"`
	Logo           *Image           `json:"logo,omitempty"`
	Links          []NavigationItem `json:"links,omitempty"`
	Contacts       []ContactPoint   `json:"contacts,omitempty"`
}

func normalizeSiteSettings(v any, baseURL string) *SiteSettings {
	node := unwrap(v)
	if node == nil {
		return nil
	}
	settings := SiteSettings{
		BrandName:   stringField(node, "brandName", "BrandName", "siteName"),
		Tagline:     stringField(node, "tagline", "Tagline"),
		Logo:        imageField(node, baseURL, "logo", "Logo"),
		TopContacts: normalizeContactPoints(listField(node, "topContacts", "TopContacts", "contacts")),
		SocialLinks: normalizeSocialLinks(listField(node, "socialLinks", "SocialLinks")),
		Navigation:  normalizeNavigation(listField(node, "navigation", "Navigation", "navLinks")),
	}
	if footerNode := unwrap(node["footer"]); footerNode != nil {
		// The CMS footer component names its fields FooterCopyright,
		// FooterLinks, and ContactDetails; the canonical names cover
		// records created after the component was cleaned up.
		settings.Footer = &Footer{
			Copyright:      stringField(footerNode, "copyright", "Copyright", "FooterCopyright", "footerNote"),
			CompanyName:    stringField(footerNode, "companyName", "CompanyName"),
			CompanyTagline: stringField(footerNode, "companyTagline", "CompanyTagline", "tagline"),
			Logo:           imageField(footerNode, baseURL, "logo", "Logo"),
			Links:          normalizeNavigation(listField(footerNode, "links", "Links", "FooterLinks", "quickLinks")),
			Contacts:       normalizeContactPoints(listField(footerNode, "contacts", "Contacts", "ContactDetails", "contactDetails")),
		}
	}
	return &settings
}

func normalizeNavigation(items []any) []NavigationItem {
	out := make([]NavigationItem, 0, len(items))
	for _, item := range items {
		node := unwrap(item)
		if node == nil {
			continue
		}
		nav := NavigationItem{
			Label:    stringField(node, "label", "Label", "title", "name"),
			URL:      stringField(node, "url", "URL", "href", "path"),
			Icon:     stringField(node, "icon", "Icon"),
			Dropdown: normalizeNavigation(listField(node, "dropdown", "Dropdown", "children")),
		}
		if nav.Label == "" && nav.URL == "" {
			continue
		}
		out = append(out, nav)
	}
	return out
}

func normalizeContactPoints(items []any) []ContactPoint {
	out := make([]ContactPoint, 0, len(items))
	for _, item := range items {
		node := unwrap(item)
		if node == nil {
			continue
		}
		cp := ContactPoint{
			Label: stringField(node, "label", "Label"),
			Value: stringField(node, "value", "Value", "text"),
			Href:  stringField(node, "href", "Href", "link"),
			Icon:  stringField(node, "icon", "Icon"),
		}
		if cp.Value == "" {
			continue
		}
		out = append(out, cp)
	}
	return out
}

func normalizeSocialLinks(items []any) []SocialLink {
	out := make([]SocialLink, 0, len(items))
	for _, item := range items {
		node := unwrap(item)
		if node == nil {
			continue
		}
		link := SocialLink{
			Platform: stringField(node, "platform", "Platform", "name"),
			URL:      stringField(node, "url", "URL", "href"),
			Icon:     stringField(node, "icon", "Icon"),
		}
		if link.URL == "" {
			continue
		}
		out = append(out, link)
	}
	return out
}
