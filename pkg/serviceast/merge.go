package serviceast

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// DefaultIdentifiers are the fields used to match list items across layers:
// services, resources and variables by name, annotations by key, imports by
// path.
var DefaultIdentifiers = []string{"name", "key", "path"}

// MergeJSON layers JSON documents; later documents override earlier ones.
//
//   - scalars: the later value wins
//   - objects: merged key by key
//   - lists: items with the same identifier value are merged, the rest are
//     appended in order; exact duplicates are dropped
//
// A nil identifiers slice means DefaultIdentifiers.
func MergeJSON(docs [][]byte, identifiers []string) ([]byte, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents to merge")
	}
	if identifiers == nil {
		identifiers = DefaultIdentifiers
	}

	merged := map[string]any{}
	for i, doc := range docs {
		var layer map[string]any
		if err := json.Unmarshal(doc, &layer); err != nil {
			return nil, fmt.Errorf("unmarshal document[%d]: %w", i, err)
		}
		merged = mergeObjects(merged, layer, identifiers)
	}
	return json.Marshal(merged)
}

func mergeObjects(base, over map[string]any, identifiers []string) map[string]any {
	out := make(map[string]any, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, ov := range over {
		bv, ok := out[k]
		if !ok {
			out[k] = ov
			continue
		}
		out[k] = mergeValues(bv, ov, identifiers)
	}
	return out
}

func mergeValues(base, over any, identifiers []string) any {
	switch ov := over.(type) {
	case map[string]any:
		if bm, ok := base.(map[string]any); ok {
			return mergeObjects(bm, ov, identifiers)
		}
	case []any:
		if bl, ok := base.([]any); ok {
			return mergeLists(bl, ov, identifiers)
		}
	}
	return over
}

// mergeLists merges over into base. Items are matched by the first
// identifier present on both sides.
//
//	base: [{"key": "BasePath", "value": "/"}]
//	over: [{"key": "BasePath", "value": "/api"}, {"key": "Consumes", ...}]
//	out:  [{"key": "BasePath", "value": "/api"}, {"key": "Consumes", ...}]
func mergeLists(base, over []any, identifiers []string) []any {
	out := append([]any(nil), base...)
	for _, item := range over {
		if containsValue(out, item) {
			continue
		}
		if obj, ok := item.(map[string]any); ok {
			if i := indexByIdentifier(out, obj, identifiers); i >= 0 {
				out[i] = mergeObjects(out[i].(map[string]any), obj, identifiers)
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

func indexByIdentifier(list []any, obj map[string]any, identifiers []string) int {
	field, id := identify(obj, identifiers)
	if field == "" {
		return -1
	}
	for i, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		if v, ok := m[field]; ok && v == id {
			return i
		}
	}
	return -1
}

// identify returns the first identifier field with a non-empty scalar value.
func identify(obj map[string]any, identifiers []string) (string, any) {
	for _, field := range identifiers {
		switch v := obj[field].(type) {
		case string:
			if v != "" {
				return field, v
			}
		case float64, bool:
			return field, v
		}
	}
	return "", nil
}

func containsValue(list []any, v any) bool {
	for _, el := range list {
		if reflect.DeepEqual(el, v) {
			return true
		}
	}
	return false
}
