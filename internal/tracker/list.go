// Package tracker implements the client-side application core of the case
// tracker: the paginated list session, the detail session, the create
// command and the create form. Sessions own their view state and go through
// the query cache, so identical requests are answered without a network
// round trip until the cache is invalidated.
package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/dcdanielca/casetracker/internal/debounce"
	"github.com/dcdanielca/casetracker/internal/domain"
	"github.com/dcdanielca/casetracker/internal/filters"
	"github.com/dcdanielca/casetracker/internal/querycache"
)

// SearchDebounceDelay is the quiet period applied to free-text search input.
const SearchDebounceDelay = 500 * time.Millisecond

// CaseAPI is the backing API surface the sessions fetch from.
type CaseAPI interface {
	ListCases(ctx context.Context, f domain.CaseFilters) (*domain.PaginatedResult[domain.Case], error)
	GetCase(ctx context.Context, id string) (*domain.CaseDetail, error)
	CreateCase(ctx context.Context, in domain.CreateCaseInput) (*domain.Case, error)
}

// Phase is the fetch status of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

// ListState is the observable state of a ListSession.
type ListState struct {
	Phase   Phase
	Filters domain.CaseFilters
	Result  *domain.PaginatedResult[domain.Case]
	Err     error
}

const listKeyPrefix = "cases?"

// listKey derives the deterministic cache key for a filter set.
func listKey(f domain.CaseFilters) string {
	return listKeyPrefix + filters.Encode(f).Encode()
}

// ListSession drives the filtered, paginated case list. Filter state lives
// in the synchronizer's store; every refresh re-reads it, fetches through
// the cache, and publishes the result unless the active filters moved on in
// the meantime.
type ListSession struct {
	api  CaseAPI
	sync *filters.Synchronizer

	mu    sync.Mutex
	cache *querycache.Cache[*domain.PaginatedResult[domain.Case]]
	state ListState
}

// NewListSession creates a list session over the given filter store.
func NewListSession(api CaseAPI, store filters.Store) *ListSession {
	s := &ListSession{
		api:   api,
		sync:  filters.NewSynchronizer(store),
		cache: querycache.New[*domain.PaginatedResult[domain.Case]](),
	}
	s.state = ListState{Phase: PhaseIdle, Filters: s.sync.Read()}
	return s
}

// State returns the last published state.
func (s *ListSession) State() ListState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Filters returns the current filter value decoded from the store.
func (s *ListSession) Filters() domain.CaseFilters {
	return s.sync.Read()
}

// Refresh fetches the page for the current filters and returns the new
// state. Identical consecutive filter values are served from cache without
// a network call.
func (s *ListSession) Refresh(ctx context.Context) ListState {
	current := s.sync.Read()
	key := listKey(current)

	s.mu.Lock()
	s.state = ListState{Phase: PhaseLoading, Filters: current}
	s.mu.Unlock()

	result, err := s.cache.Get(ctx, key, func(ctx context.Context) (*domain.PaginatedResult[domain.Case], error) {
		return s.api.ListCases(ctx, current)
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	// A newer filter change supersedes this fetch; its result is dropped.
	if listKey(s.sync.Read()) != key {
		return s.state
	}

	if err != nil {
		s.state = ListState{Phase: PhaseError, Filters: current, Err: err}
	} else {
		s.state = ListState{Phase: PhaseSuccess, Filters: current, Result: result}
	}
	return s.state
}

// Apply merges a filter patch into the store (resetting to page 1 unless the
// patch navigates pages explicitly) and refreshes.
func (s *ListSession) Apply(ctx context.Context, p filters.Patch) ListState {
	s.sync.Update(p)
	return s.Refresh(ctx)
}

// Reset clears all filters and refreshes.
func (s *ListSession) Reset(ctx context.Context) ListState {
	s.sync.Reset()
	return s.Refresh(ctx)
}

// SearchInput returns a debouncer that feeds settled search text into the
// filter state. The settled value propagates as a search patch; an empty
// settled value removes the search parameter entirely.
func (s *ListSession) SearchInput(ctx context.Context) *debounce.Debouncer {
	initial := s.sync.Read().Search
	return debounce.New(SearchDebounceDelay, initial, func(text string) {
		s.Apply(ctx, filters.Patch{Search: filters.Ptr(text)})
	})
}

// InvalidateLists drops all cached list pages so the next refresh hits the
// backend. The create command calls this after a successful submission.
func (s *ListSession) InvalidateLists() {
	s.cache.Invalidate(listKeyPrefix)
}
