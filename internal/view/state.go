// Package view implements the generic list view shared by every OctoFit
// resource: fetch one collection, decode loosely-typed records into typed
// rows, and expose exactly one of the loading, error or loaded states.
package view

// Kind identifies which state a view is in.
type Kind int

const (
	// KindLoading is the state from the start of a fetch until it settles.
	KindLoading Kind = iota
	// KindError holds the failure message of the last fetch.
	KindError
	// KindLoaded holds the decoded rows of the last fetch, possibly none.
	KindLoaded
)

// String returns the lowercase state name used in structured output.
func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindError:
		return "error"
	case KindLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// State is the tagged variant {Loading, Error(message), Loaded(rows)}.
// Only the fields belonging to Kind are meaningful.
type State[T any] struct {
	Kind    Kind
	Message string
	Err     error
	Rows    []T
}

// Loading returns the loading state.
func Loading[T any]() State[T] {
	return State[T]{Kind: KindLoading}
}

// Failed returns the error state for err.
func Failed[T any](err error) State[T] {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return State[T]{Kind: KindError, Message: msg, Err: err}
}

// Loaded returns the loaded state. A nil rows slice is stored as empty.
func Loaded[T any](rows []T) State[T] {
	if rows == nil {
		rows = []T{}
	}
	return State[T]{Kind: KindLoaded, Rows: rows}
}

// Empty reports whether the view loaded successfully with zero rows.
func (s State[T]) Empty() bool {
	return s.Kind == KindLoaded && len(s.Rows) == 0
}
