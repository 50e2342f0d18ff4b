// Package record provides tolerant access to loosely-typed JSON records.
//
// Backend payloads carry no schema guarantees: any display field may be
// missing, null, a scalar, or a nested object. A Resolver walks an ordered
// chain of Candidates and returns the first present value, falling back to a
// column default when none is present.
package record

import (
	"encoding/json"
	"strconv"
)

// Record is one JSON object from a collection response.
type Record map[string]any

// FromValue converts a decoded JSON value to a Record. Non-objects yield an
// empty Record so that callers can still count and index them.
func FromValue(v any) Record {
	if m, ok := v.(map[string]any); ok {
		return Record(m)
	}
	return Record{}
}

// Lookup returns the value stored under key. A key is present when it
// exists and is not JSON null.
func (r Record) Lookup(key string) (any, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Has reports whether key is present.
func (r Record) Has(key string) bool {
	_, ok := r.Lookup(key)
	return ok
}

// Truthy reports whether key is present and its value is truthy.
func (r Record) Truthy(key string) bool {
	v, ok := r.Lookup(key)
	return ok && Truthy(v)
}

// String returns the formatted value of key, or "" when absent.
func (r Record) String(key string) string {
	v, ok := r.Lookup(key)
	if !ok {
		return ""
	}
	return Format(v)
}

// Object returns the nested object under key.
func (r Record) Object(key string) (Record, bool) {
	v, ok := r.Lookup(key)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Record(m), true
}

// List returns the nested array under key.
func (r Record) List(key string) ([]any, bool) {
	v, ok := r.Lookup(key)
	if !ok {
		return nil, false
	}
	l, ok := v.([]any)
	return l, ok
}

// Truthy mirrors the truthiness the backend's consumers have always relied
// on: false, 0, "" and null are falsy; everything else, including empty
// arrays and objects, is truthy.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case int:
		return val != 0
	case int64:
		return val != 0
	default:
		return true
	}
}

// Format renders a JSON value for display. Whole numbers are printed without
// a fractional part, nested values as compact JSON.
func Format(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// DisplayName resolves a value that is either a plain scalar or a nested
// object naming an entity (user, team, captain, member). Objects resolve to
// their username, then name; scalars are formatted as-is.
func DisplayName(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if m, ok := v.(map[string]any); ok {
		nested := Record(m)
		for _, key := range []string{"username", "name"} {
			if s, found := nested.Lookup(key); found {
				return Format(s), true
			}
		}
		return "", false
	}
	return Format(v), true
}
