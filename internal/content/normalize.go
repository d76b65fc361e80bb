// Package content maps loosely-typed CMS payloads into the stable shapes
// the site consumes. The CMS serves the same logical entity in several
// wire forms depending on API version and relation-population mode, and
// older field-name variants survive in partially-migrated data, so every
// accessor here duck-types its input and falls through an alias chain
// instead of trusting any one schema.
//
// Nothing in this package returns an error for missing data: optional
// absence degrades to zero values, and records without their minimum
// identity are dropped from the output.
package content

import (
	"math"
	"strconv"
)

// unwrap peels the {data: ...} and {attributes: ...} envelopes off a
// CMS node and returns the flat field map, or nil when the value is not
// object-shaped (primitive references are resolved elsewhere).
func unwrap(v any) map[string]any {
	node, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	if data, ok := node["data"]; ok {
		inner, isMap := data.(map[string]any)
		if !isMap {
			// {data: null} or {data: [...]}; nothing flat to return.
			if data == nil {
				return nil
			}
			return node
		}
		node = inner
	}
	if attrs, ok := node["attributes"].(map[string]any); ok {
		// The v4 envelope keeps the id next to the attributes; merge it
		// back in so callers see one flat record.
		merged := make(map[string]any, len(attrs)+2)
		for k, val := range attrs {
			merged[k] = val
		}
		if id, ok := node["id"]; ok {
			merged["id"] = id
		}
		if docID, ok := node["documentId"]; ok {
			merged["documentId"] = docID
		}
		return merged
	}
	return node
}

// unwrapList returns the element slice of a CMS collection response,
// accepting either a bare array or the {data: [...]} envelope.
func unwrapList(v any) []any {
	switch typed := v.(type) {
	case []any:
		return typed
	case map[string]any:
		if data, ok := typed["data"].([]any); ok {
			return data
		}
	}
	return nil
}

// stringField resolves a string through an alias chain: each name is
// tried in order and the first non-empty string wins. Fields resolve
// independently; a record may match different chains on different fields.
func stringField(node map[string]any, names ...string) string {
	for _, name := range names {
		if s, ok := node[name].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// intField resolves an integer through an alias chain. JSON numbers
// arrive as float64; strings holding digits are accepted for legacy
// records that stored ids as text.
func intField(node map[string]any, names ...string) (int64, bool) {
	for _, name := range names {
		switch typed := node[name].(type) {
		case float64:
			if typed == math.Trunc(typed) {
				return int64(typed), true
			}
		case string:
			if n, err := strconv.ParseInt(typed, 10, 64); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

// floatField resolves a number through an alias chain.
func floatField(node map[string]any, names ...string) (float64, bool) {
	for _, name := range names {
		if f, ok := node[name].(float64); ok {
			return f, true
		}
	}
	return 0, false
}

// boolField resolves a boolean through an alias chain.
func boolField(node map[string]any, names ...string) bool {
	for _, name := range names {
		if b, ok := node[name].(bool); ok {
			return b
		}
	}
	return false
}

// listField resolves a relation list through an alias chain, unwrapping
// the {data: [...]} envelope when present.
func listField(node map[string]any, names ...string) []any {
	for _, name := range names {
		if items := unwrapList(node[name]); items != nil {
			return items
		}
	}
	return nil
}

// intPtr converts an optional numeric field to a nullable int.
func intPtr(node map[string]any, names ...string) *int64 {
	if n, ok := intField(node, names...); ok {
		return &n
	}
	return nil
}
