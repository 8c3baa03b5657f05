package filters

import (
	"net/url"
	"strconv"
	"sync"

	"github.com/dcdanielca/casetracker/internal/domain"
)

// Store holds the authoritative URL query parameters the Synchronizer reads
// and writes. In a browser-like host this is the address bar; in tests and
// the CLI it is a MemoryStore.
type Store interface {
	Values() url.Values
	SetValues(url.Values)
}

// Patch is a partial filter update. A nil field leaves the parameter
// untouched; a pointer to the zero value removes it; any other value sets
// it. Ptr builds field values in place.
type Patch struct {
	Page      *int
	Status    *domain.Status
	Priority  *domain.Priority
	CaseType  *domain.CaseType
	Search    *string
	SortBy    *string
	SortOrder *domain.SortOrder
}

// Ptr returns a pointer to v, for building Patch literals.
func Ptr[T any](v T) *T {
	return &v
}

// Synchronizer reconciles the typed filter model with its Store-backed
// query-string representation. The store is the single source of truth:
// Read decodes it fresh on every call.
type Synchronizer struct {
	store Store
}

// NewSynchronizer creates a Synchronizer over the given store.
func NewSynchronizer(store Store) *Synchronizer {
	return &Synchronizer{store: store}
}

// Read parses the store's current parameters into the typed filter model.
func (s *Synchronizer) Read() domain.CaseFilters {
	return Decode(s.store.Values())
}

// Update merges the patch into the store. Setting a field to its zero value
// removes the parameter entirely rather than writing an empty one.
//
// Unless the patch itself carries Page, the resulting page parameter is
// forced to "1": any filter change other than an explicit page navigation
// resets pagination to the first page, even when several fields change at
// once.
func (s *Synchronizer) Update(p Patch) {
	values := cloneValues(s.store.Values())

	setOrDelete := func(key, v string) {
		if v == "" {
			values.Del(key)
		} else {
			values.Set(key, v)
		}
	}

	if p.Status != nil {
		setOrDelete("status", string(*p.Status))
	}
	if p.Priority != nil {
		setOrDelete("priority", string(*p.Priority))
	}
	if p.CaseType != nil {
		setOrDelete("case_type", string(*p.CaseType))
	}
	if p.Search != nil {
		setOrDelete("search", *p.Search)
	}
	if p.SortBy != nil {
		setOrDelete("sort_by", *p.SortBy)
	}
	if p.SortOrder != nil {
		setOrDelete("sort_order", string(*p.SortOrder))
	}

	if p.Page != nil {
		if *p.Page > 0 {
			values.Set("page", strconv.Itoa(*p.Page))
		} else {
			values.Del("page")
		}
	} else {
		values.Set("page", "1")
	}

	s.store.SetValues(values)
}

// Reset clears every query parameter, returning to the default filter state.
func (s *Synchronizer) Reset() {
	s.store.SetValues(url.Values{})
}

func cloneValues(src url.Values) url.Values {
	dst := make(url.Values, len(src))
	for k, vs := range src {
		dst[k] = append([]string(nil), vs...)
	}
	return dst
}

// MemoryStore is an in-process Store guarded by a mutex.
type MemoryStore struct {
	mu     sync.Mutex
	values url.Values
}

// NewMemoryStore creates a MemoryStore, optionally seeded with initial values.
func NewMemoryStore(initial url.Values) *MemoryStore {
	return &MemoryStore{values: cloneValues(initial)}
}

// Values returns a copy of the stored parameters.
func (m *MemoryStore) Values() url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneValues(m.values)
}

// SetValues replaces the stored parameters.
func (m *MemoryStore) SetValues(values url.Values) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = cloneValues(values)
}
