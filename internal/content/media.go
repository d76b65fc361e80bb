package content

import "strings"

// Image is a render-ready media reference: one resolved absolute URL
// plus alt text. Rendition selection happens at normalization time so
// consumers never see the CMS formats tree.
type Image struct {
	URL    string `json:"url"`
	Alt    string `json:"alt,omitempty"`
	Width  int64  `json:"width,omitempty"`
	Height int64  `json:"height,omitempty"`
}

// renditionOrder is the preferred-first fallback chain used when a
// media record carries no top-level url.
var renditionOrder = []string{"large", "medium", "small", "thumbnail"}

// normalizeImage resolves a CMS media node to an Image, or nil when no
// usable URL can be found. Relative URLs are resolved against baseURL,
// which is how the CMS serves locally-uploaded files.
func normalizeImage(v any, baseURL string) *Image {
	node := unwrap(v)
	if node == nil {
		return nil
	}
	url := stringField(node, "url")
	if url == "" {
		if formats, ok := node["formats"].(map[string]any); ok {
			for _, name := range renditionOrder {
				if rendition, ok := formats[name].(map[string]any); ok {
					if url = stringField(rendition, "url"); url != "" {
						break
					}
				}
			}
		}
	}
	if url == "" {
		return nil
	}
	img := &Image{
		URL: absoluteURL(url, baseURL),
		Alt: stringField(node, "alternativeText", "caption", "name"),
	}
	if w, ok := intField(node, "width"); ok {
		img.Width = w
	}
	if h, ok := intField(node, "height"); ok {
		img.Height = h
	}
	return img
}

// imageField resolves a media relation through an alias chain.
func imageField(node map[string]any, baseURL string, names ...string) *Image {
	for _, name := range names {
		if img := normalizeImage(node[name], baseURL); img != nil {
			return img
		}
	}
	return nil
}

func absoluteURL(url, baseURL string) string {
	if strings.HasPrefix(url, "/") && baseURL != "" {
		return strings.TrimSuffix(baseURL, "/") + url
	}
	return url
}
