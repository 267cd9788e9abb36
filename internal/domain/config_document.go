package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Document is the root of a configuration tree. Nodes are map[string]any,
// []any, string, float64, bool or nil; NormalizeValue maps decoder output
// onto that set.
type Document map[string]any

// ConfigSnapshot is one read of the persisted document.
type ConfigSnapshot struct {
	Path   string
	Exists bool
	Raw    []byte
	Valid  bool
	Parsed Document
	Issues []ValidationIssue
}

func CloneDocument(doc Document) Document {
	if doc == nil {
		return Document{}
	}
	return Document(cloneObject(doc))
}

func CloneValue(value any) any {
	switch v := value.(type) {
	case Document:
		return cloneObject(v)
	case map[string]any:
		return cloneObject(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = CloneValue(item)
		}
		return out
	default:
		return v
	}
}

func cloneObject(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for key, item := range obj {
		out[key] = CloneValue(item)
	}
	return out
}

// GetAtPath looks up the node at path. An absent node reports false and is
// never an error.
func GetAtPath(doc Document, path ConfigPath) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}

	var node any = map[string]any(doc)
	for _, segment := range path {
		if segment.IsIndex {
			arr, ok := node.([]any)
			if !ok || segment.Index >= len(arr) {
				return nil, false
			}
			node = arr[segment.Index]
			continue
		}
		obj, ok := asObject(node)
		if !ok {
			return nil, false
		}
		child, exists := obj[segment.Key]
		if !exists {
			return nil, false
		}
		node = child
	}

	return node, true
}

// SetAtPath writes value at path inside doc, creating intermediate objects
// and arrays along the way. Intermediate scalars are replaced. Callers pass a
// clone; the snapshot they read must stay untouched.
func SetAtPath(doc Document, path ConfigPath, value any) error {
	if doc == nil {
		return fmt.Errorf("set config value: nil document")
	}
	if len(path) == 0 {
		return &PathError{Raw: "", Reason: "path is empty"}
	}
	if path[0].IsIndex {
		return &PathError{Raw: path.String(), Reason: "path must start with a key"}
	}
	for _, segment := range path {
		if segment.IsIndex && (segment.Index < 0 || segment.Index > MaxPathIndex) {
			return &PathError{Raw: path.String(), Reason: "index out of range"}
		}
	}

	setNode(map[string]any(doc), path, value)
	return nil
}

func setNode(node any, path ConfigPath, value any) any {
	segment := path[0]
	rest := path[1:]

	if segment.IsIndex {
		arr, ok := node.([]any)
		if !ok {
			arr = []any{}
		}
		for len(arr) <= segment.Index {
			arr = append(arr, nil)
		}
		if len(rest) == 0 {
			arr[segment.Index] = value
		} else {
			arr[segment.Index] = setNode(arr[segment.Index], rest, value)
		}
		return arr
	}

	obj, ok := asObject(node)
	if !ok {
		obj = map[string]any{}
	}
	if len(rest) == 0 {
		obj[segment.Key] = value
	} else {
		obj[segment.Key] = setNode(obj[segment.Key], rest, value)
	}
	return obj
}

// UnsetAtPath removes the node at path and reports whether anything was
// there. Array elements are spliced out; objects emptied by the removal are
// pruned up to (not including) the root.
func UnsetAtPath(doc Document, path ConfigPath) bool {
	if doc == nil || len(path) == 0 {
		return false
	}
	removed, _ := unsetNode(map[string]any(doc), path)
	return removed
}

func unsetNode(node any, path ConfigPath) (bool, any) {
	segment := path[0]
	rest := path[1:]

	if segment.IsIndex {
		arr, ok := node.([]any)
		if !ok || segment.Index >= len(arr) {
			return false, node
		}
		if len(rest) == 0 {
			return true, append(arr[:segment.Index:segment.Index], arr[segment.Index+1:]...)
		}
		removed, child := unsetNode(arr[segment.Index], rest)
		if removed {
			arr[segment.Index] = child
		}
		return removed, arr
	}

	obj, ok := asObject(node)
	if !ok {
		return false, node
	}
	child, exists := obj[segment.Key]
	if !exists {
		return false, node
	}
	if len(rest) == 0 {
		delete(obj, segment.Key)
		return true, obj
	}

	removed, updated := unsetNode(child, rest)
	if !removed {
		return false, obj
	}
	if nested, ok := updated.(map[string]any); ok && len(nested) == 0 {
		delete(obj, segment.Key)
	} else {
		obj[segment.Key] = updated
	}
	return true, obj
}

// MergeDocuments deep-merges overlay onto a clone of base. Objects merge key
// by key; any other overlay node replaces the base node.
func MergeDocuments(base, overlay Document) Document {
	merged := CloneDocument(base)
	for key, value := range overlay {
		merged[key] = mergeValue(merged[key], value)
	}
	return merged
}

func mergeValue(base, overlay any) any {
	overlayObj, ok := asObject(overlay)
	if !ok {
		return CloneValue(overlay)
	}
	baseObj, ok := asObject(base)
	if !ok {
		return CloneValue(overlayObj)
	}
	out := cloneObject(baseObj)
	for key, value := range overlayObj {
		out[key] = mergeValue(out[key], value)
	}
	return out
}

// NormalizeValue converts decoder output (TOML ints, YAML maps, times) into
// the node set a Document holds.
func NormalizeValue(value any) any {
	switch v := value.(type) {
	case nil, string, bool, float64:
		return v
	case Document:
		return normalizeObject(v)
	case map[string]any:
		return normalizeObject(v)
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = NormalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = NormalizeValue(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeObject(item)
		}
		return out
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func normalizeObject(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for key, item := range obj {
		out[key] = NormalizeValue(item)
	}
	return out
}

// AsDocument accepts any decoded root and reports whether it is an object.
func AsDocument(value any) (Document, bool) {
	obj, ok := asObject(NormalizeValue(value))
	if !ok {
		return nil, false
	}
	return Document(obj), true
}

// IsInteger reports whether value is a finite whole number.
func IsInteger(value any) bool {
	f, ok := value.(float64)
	return ok && !math.IsInf(f, 0) && f == math.Trunc(f)
}

func asObject(node any) (map[string]any, bool) {
	switch v := node.(type) {
	case map[string]any:
		return v, true
	case Document:
		return map[string]any(v), true
	default:
		return nil, false
	}
}
