package view

import (
	"context"
	"sync"

	"github.com/octofit/octofit/internal/api"
	"github.com/octofit/octofit/internal/logging"
	"github.com/octofit/octofit/internal/record"
)

// Fetcher retrieves collections. *api.Client implements it.
type Fetcher interface {
	Endpoint(resource string) string
	FetchCollection(ctx context.Context, resource string) (*api.Collection, error)
}

// Loader is the resource-agnostic face of a ListView.
type Loader interface {
	Resource() string
	Endpoint() string
	// Reload starts a new fetch, waits for it and returns the snapshot. A fetch
	// cancelled through ctx leaves the snapshot loading.
	Reload(ctx context.Context) Snapshot
	Snapshot() Snapshot
	// Close cancels any fetch in flight; its result is discarded.
	Close()
}

// ListView fetches and holds one resource collection.
type ListView[T any] struct {
	def     Definition[T]
	fetcher Fetcher
	dates   record.DateFormatter

	mu        sync.Mutex
	state     State[T]
	seq       uint64
	cancel    context.CancelFunc
	truncated bool
	pages     int
}

var _ Loader = (*ListView[struct{}])(nil)

// New creates a view in the loading state. Nothing is fetched until Load.
func New[T any](def Definition[T], fetcher Fetcher, dates record.DateFormatter) *ListView[T] {
	return &ListView[T]{
		def:     def,
		fetcher: fetcher,
		dates:   dates,
		state:   Loading[T](),
	}
}

// Definition returns the view's resource definition.
func (v *ListView[T]) Definition() Definition[T] {
	return v.def
}

// Resource returns the resource path segment.
func (v *ListView[T]) Resource() string {
	return v.def.Resource
}

// Endpoint returns the URL the view fetches.
func (v *ListView[T]) Endpoint() string {
	return v.fetcher.Endpoint(v.def.Resource)
}

// State returns the current state.
func (v *ListView[T]) State() State[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Load resets the view to loading, fetches the collection and settles into
// Error or Loaded. A fetch superseded by a later Load, abandoned by Close or
// cancelled through ctx leaves the view loading. The returned state is the
// view's state after the call.
func (v *ListView[T]) Load(ctx context.Context) State[T] {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.seq++
	seq := v.seq
	v.cancel = cancel
	v.state = Loading[T]()
	v.truncated = false
	v.pages = 0
	v.mu.Unlock()

	log := logging.FromContext(ctx).With().
		Str("subsystem", "view").
		Str("resource", v.def.Resource).
		Logger()
	log.Debug().Uint64("seq", seq).Msg("loading view")

	coll, err := v.fetcher.FetchCollection(ctx, v.def.Resource)

	next := Failed[T](err)
	if err == nil {
		next = Loaded(v.def.DecodeAll(coll.Records, v.dates))
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.seq {
		log.Debug().Uint64("seq", seq).Msg("discarding superseded result")
		return v.state
	}
	v.cancel = nil
	if err != nil && ctx.Err() != nil {
		log.Debug().Uint64("seq", seq).Err(err).Msg("discarding cancelled result")
		return v.state
	}
	v.state = next
	if coll != nil {
		v.truncated = coll.Truncated
		v.pages = coll.Pages
	}
	if next.Kind == KindError {
		log.Error().Err(err).Str("error_kind", api.Kind(err).String()).Msg("view failed to load")
	} else {
		log.Debug().Int("rows", len(next.Rows)).Msg("view loaded")
	}
	return v.state
}

// Close cancels the fetch in flight and invalidates its sequence number so
// its result is discarded.
func (v *ListView[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.seq++
}

// Reload implements Loader.
func (v *ListView[T]) Reload(ctx context.Context) Snapshot {
	v.Load(ctx)
	return v.Snapshot()
}

// Snapshot implements Loader.
func (v *ListView[T]) Snapshot() Snapshot {
	state := v.State()

	v.mu.Lock()
	truncated, pages := v.truncated, v.pages
	v.mu.Unlock()

	snap := Snapshot{
		Resource:   v.def.Resource,
		Title:      v.def.Title,
		Noun:       v.def.Noun,
		Endpoint:   v.Endpoint(),
		Kind:       state.Kind,
		Message:    state.Message,
		Err:        state.Err,
		Headers:    v.def.Headers(),
		Widths:     v.def.Widths(),
		EmptyText:  v.def.EmptyMessage(),
		TotalLabel: v.def.TotalPrefix(),
		Truncated:  truncated,
		Pages:      pages,
		dates:      v.dates,
	}
	if state.Kind != KindLoaded {
		return snap
	}

	snap.Rows = make([][]string, len(state.Rows))
	snap.Items = make([]any, len(state.Rows))
	if v.def.Details != nil {
		snap.Details = make([][]Field, len(state.Rows))
	}
	for i, row := range state.Rows {
		snap.Rows[i] = v.def.Cells(row)
		snap.Items[i] = row
		if v.def.Details != nil {
			snap.Details[i] = v.def.Details(row)
		}
	}
	return snap
}
