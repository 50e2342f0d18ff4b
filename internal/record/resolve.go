package record

// Candidate extracts one possible display value from a record.
type Candidate func(r Record) (string, bool)

// Key is present when r[key] is present. Nested values render as JSON.
func Key(key string) Candidate {
	return func(r Record) (string, bool) {
		v, ok := r.Lookup(key)
		if !ok {
			return "", false
		}
		return Format(v), true
	}
}

// Scalar is present when r[key] is present and is neither an object nor an array.
func Scalar(key string) Candidate {
	return func(r Record) (string, bool) {
		v, ok := r.Lookup(key)
		if !ok {
			return "", false
		}
		switch v.(type) {
		case map[string]any, []any:
			return "", false
		}
		return Format(v), true
	}
}

// Sub is present when r[key] is an object whose field sub is present.
func Sub(key, sub string) Candidate {
	return func(r Record) (string, bool) {
		nested, ok := r.Object(key)
		if !ok {
			return "", false
		}
		return Key(sub)(nested)
	}
}

// Named resolves r[key] one level deep: an object yields its username or
// name, a scalar yields itself.
func Named(key string) Candidate {
	return func(r Record) (string, bool) {
		v, ok := r.Lookup(key)
		if !ok {
			return "", false
		}
		return DisplayName(v)
	}
}

// NonZero is present when r[key] is present and truthy.
func NonZero(key string) Candidate {
	return func(r Record) (string, bool) {
		v, ok := r.Lookup(key)
		if !ok || !Truthy(v) {
			return "", false
		}
		return Format(v), true
	}
}

// Date is present when r[key] is truthy; the value is rendered through f.
func Date(key string, f DateFormatter) Candidate {
	return func(r Record) (string, bool) {
		v, ok := r.Lookup(key)
		if !ok || !Truthy(v) {
			return "", false
		}
		return f.Format(v), true
	}
}

// Flag is present when r[key] is present; it renders truthy values as
// whenTrue and everything else as whenFalse.
func Flag(key, whenTrue, whenFalse string) Candidate {
	return func(r Record) (string, bool) {
		v, ok := r.Lookup(key)
		if !ok {
			return "", false
		}
		if Truthy(v) {
			return whenTrue, true
		}
		return whenFalse, true
	}
}

// Resolve returns the first present candidate value, or def.
func Resolve(r Record, def string, candidates ...Candidate) string {
	if v, ok := First(r, candidates...); ok {
		return v
	}
	return def
}

// First returns the first present candidate value.
func First(r Record, candidates ...Candidate) (string, bool) {
	for _, c := range candidates {
		if v, ok := c(r); ok {
			return v, true
		}
	}
	return "", false
}
