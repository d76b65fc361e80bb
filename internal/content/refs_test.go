package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []PracticeArea {
	return []PracticeArea{
		{ID: 1, DocumentID: "doc-a", Slug: "immigration", Title: "Immigration Law"},
		{ID: 2, DocumentID: "doc-b", Slug: "family-law", Title: "Family Law"},
		{ID: 3, DocumentID: "doc-c", Slug: "criminal-defence", Title: "Criminal Defence"},
		{ID: 4, DocumentID: "doc-d", Slug: "wills-estates", Title: "Wills & Estates"},
	}
}

func slugs(areas []PracticeArea) []string {
	out := make([]string, len(areas))
	for i, a := range areas {
		out[i] = a.Slug
	}
	return out
}

func TestResolveAreaRefsPreservesCuratedOrder(t *testing.T) {
	// The editor curated [B, A, C]; the catalog holds {A, B, C, D}.
	// Output follows the curated order, not the catalog order.
	refs := []any{"family-law", "immigration", "criminal-defence"}
	resolved := resolveAreaRefs(refs, testCatalog(), nil)
	assert.Equal(t, []string{"family-law", "immigration", "criminal-defence"}, slugs(resolved))
}

func TestResolveAreaRefsMixedIdentityForms(t *testing.T) {
	refs := []any{
		float64(3),                             // numeric id
		"doc-a",                                // documentId
		map[string]any{"slug": "wills-estates"}, // identity-only object
		map[string]any{"id": float64(2)},
	}
	resolved := resolveAreaRefs(refs, testCatalog(), nil)
	assert.Equal(t, []string{"criminal-defence", "immigration", "wills-estates", "family-law"}, slugs(resolved))
}

func TestResolveAreaRefsDropsUnresolved(t *testing.T) {
	refs := []any{"family-law", "no-such-slug", float64(99)}
	resolved := resolveAreaRefs(refs, testCatalog(), nil)
	assert.Equal(t, []string{"family-law"}, slugs(resolved))
}

func TestResolveAreaRefsCatalogWinsOverInline(t *testing.T) {
	inline := []PracticeArea{{Slug: "family-law", Title: "Stale Inline Copy"}}
	resolved := resolveAreaRefs([]any{"family-law"}, testCatalog(), inline)
	require.Len(t, resolved, 1)
	assert.Equal(t, "Family Law", resolved[0].Title)
}

func TestResolveAreaRefsInlineFillsCatalogGaps(t *testing.T) {
	inline := []PracticeArea{{Slug: "notary", Title: "Notary Services"}}
	resolved := resolveAreaRefs([]any{"notary"}, testCatalog(), inline)
	require.Len(t, resolved, 1)
	assert.Equal(t, "Notary Services", resolved[0].Title)
}

func TestSelectPracticeAreasFallbackChain(t *testing.T) {
	catalog := testCatalog()
	inline := []PracticeArea{{Slug: "family-law", Title: "Family Law"}}

	t.Run("refs win", func(t *testing.T) {
		out := selectPracticeAreas([]any{"immigration"}, inline, catalog)
		assert.Equal(t, []string{"immigration"}, slugs(out))
	})

	t.Run("inline when no refs", func(t *testing.T) {
		out := selectPracticeAreas(nil, inline, catalog)
		assert.Equal(t, []string{"family-law"}, slugs(out))
	})

	t.Run("catalog when nothing curated", func(t *testing.T) {
		out := selectPracticeAreas(nil, nil, catalog)
		assert.Len(t, out, 4)
	})

	t.Run("all refs unresolved falls back to inline", func(t *testing.T) {
		out := selectPracticeAreas([]any{"missing"}, inline, catalog)
		assert.Equal(t, []string{"family-law"}, slugs(out))
	})
}

func TestLooksLikeRef(t *testing.T) {
	assert.True(t, looksLikeRef("family-law"))
	assert.True(t, looksLikeRef(float64(2)))
	assert.True(t, looksLikeRef(map[string]any{"slug": "family-law"}))
	assert.False(t, looksLikeRef(map[string]any{"slug": "family-law", "title": "Family Law"}))
	assert.False(t, looksLikeRef(nil))
}
