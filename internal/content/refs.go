package content

import "strconv"

// looksLikeRef reports whether a list element is a lightweight
// reference to a practice area rather than a populated record. Bare
// numbers and strings are always refs; an object is a ref when it
// carries identity fields only and no display fields of its own.
func looksLikeRef(v any) bool {
	switch v.(type) {
	case float64, string:
		return true
	}
	node := unwrap(v)
	if node == nil {
		return false
	}
	return stringField(node, "title", "Title", "name") == ""
}

// areaLookup indexes practice areas by the three identity forms a ref
// can use. Earlier sources win: the catalog is indexed before any
// inline records, so a partially-populated inline copy never shadows
// the catalog's full record.
type areaLookup struct {
	byID    map[int64]*PracticeArea
	byDocID map[string]*PracticeArea
	bySlug  map[string]*PracticeArea
}

func newAreaLookup(sources ...[]PracticeArea) *areaLookup {
	l := &areaLookup{
		byID:    map[int64]*PracticeArea{},
		byDocID: map[string]*PracticeArea{},
		bySlug:  map[string]*PracticeArea{},
	}
	for _, source := range sources {
		for i := range source {
			area := &source[i]
			if area.ID != 0 {
				if _, seen := l.byID[area.ID]; !seen {
					l.byID[area.ID] = area
				}
			}
			if area.DocumentID != "" {
				if _, seen := l.byDocID[area.DocumentID]; !seen {
					l.byDocID[area.DocumentID] = area
				}
			}
			if area.Slug != "" {
				if _, seen := l.bySlug[area.Slug]; !seen {
					l.bySlug[area.Slug] = area
				}
			}
		}
	}
	return l
}

// resolve maps one ref to its record. Strings are tried as a
// documentId, then a slug, then a numeric id; objects expose whichever
// identity fields they carry.
func (l *areaLookup) resolve(ref any) *PracticeArea {
	switch typed := ref.(type) {
	case float64:
		return l.byID[int64(typed)]
	case string:
		if area := l.byDocID[typed]; area != nil {
			return area
		}
		if area := l.bySlug[typed]; area != nil {
			return area
		}
		if id, err := strconv.ParseInt(typed, 10, 64); err == nil {
			return l.byID[id]
		}
		return nil
	}
	node := unwrap(ref)
	if node == nil {
		return nil
	}
	if id, ok := intField(node, "id"); ok {
		if area := l.byID[id]; area != nil {
			return area
		}
	}
	if docID := stringField(node, "documentId"); docID != "" {
		if area := l.byDocID[docID]; area != nil {
			return area
		}
	}
	if slug := stringField(node, "slug", "Slug"); slug != "" {
		return l.bySlug[slug]
	}
	return nil
}

// resolveAreaRefs resolves an editor-curated reference list against the
// catalog (and any inline records from the same section). The curated
// order is preserved exactly; refs that match nothing are dropped.
func resolveAreaRefs(refs []any, catalog, inline []PracticeArea) []PracticeArea {
	if len(refs) == 0 {
		return nil
	}
	lookup := newAreaLookup(catalog, inline)
	out := make([]PracticeArea, 0, len(refs))
	for _, ref := range refs {
		if area := lookup.resolve(ref); area != nil {
			out = append(out, *area)
		}
	}
	return out
}

// selectPracticeAreas applies the grid fallback chain: resolved curated
// refs first, then inline records as populated, then the full catalog.
func selectPracticeAreas(refs []any, inline, catalog []PracticeArea) []PracticeArea {
	if resolved := resolveAreaRefs(refs, catalog, inline); len(resolved) > 0 {
		return resolved
	}
	if len(inline) > 0 {
		return inline
	}
	return catalog
}
