package tracker

import (
	"context"
	"sync"

	"github.com/dcdanielca/casetracker/internal/domain"
	"github.com/dcdanielca/casetracker/internal/querycache"
)

// DetailState is the observable state of a DetailSession.
type DetailState struct {
	Phase Phase
	ID    string
	Case  *domain.CaseDetail
	Err   error
}

// DetailSession fetches a single case with its queries. It is disabled for
// an empty id: in that state it reports idle with no data instead of a
// pending fetch.
type DetailSession struct {
	api CaseAPI

	mu    sync.Mutex
	cache *querycache.Cache[*domain.CaseDetail]
	state DetailState
}

// NewDetailSession creates a detail session.
func NewDetailSession(api CaseAPI) *DetailSession {
	return &DetailSession{
		api:   api,
		cache: querycache.New[*domain.CaseDetail](),
	}
}

// State returns the last published state.
func (s *DetailSession) State() DetailState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Load fetches the case with the given id. A nonexistent id surfaces an
// error satisfying domain.IsNotFound; it never yields a default record.
func (s *DetailSession) Load(ctx context.Context, id string) DetailState {
	if id == "" {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.state = DetailState{Phase: PhaseIdle}
		return s.state
	}

	key := "cases/" + id

	s.mu.Lock()
	s.state = DetailState{Phase: PhaseLoading, ID: id}
	s.mu.Unlock()

	detail, err := s.cache.Get(ctx, key, func(ctx context.Context) (*domain.CaseDetail, error) {
		return s.api.GetCase(ctx, id)
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = DetailState{Phase: PhaseError, ID: id, Err: err}
	} else {
		s.state = DetailState{Phase: PhaseSuccess, ID: id, Case: detail}
	}
	return s.state
}
