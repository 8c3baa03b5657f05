package cases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dcdanielca/casetracker/internal/domain"
	"github.com/dcdanielca/casetracker/internal/pkg"
)

// caseService implements domain.CaseService. Input validation happens at
// the handler boundary; the service assumes well-formed input and owns the
// server-assigned fields: ids, timestamps, initial status and the
// denormalized queries count.
type caseService struct {
	repo  domain.CaseRepository
	now   func() time.Time
	newID func() string
}

// NewCaseService creates a CaseService with the given repository.
func NewCaseService(repo domain.CaseRepository) domain.CaseService {
	return &caseService{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// CreateCase persists a new case with its queries. The case always starts
// open; each query is stamped with the submission time and the creator.
func (s *caseService) CreateCase(ctx context.Context, in domain.CreateCaseInput) (*domain.Case, error) {
	now := s.now().UTC()

	c := &domain.Case{
		ID:           s.newID(),
		Title:        in.Title,
		Description:  in.Description,
		CaseType:     in.CaseType,
		Priority:     in.Priority,
		Status:       domain.StatusOpen,
		CreatedBy:    in.CreatedBy,
		CreatedAt:    now,
		QueriesCount: len(in.Queries),
	}

	queries := make([]domain.Query, 0, len(in.Queries))
	for i, q := range in.Queries {
		queries = append(queries, domain.Query{
			ID:           s.newID(),
			CaseID:       c.ID,
			Position:     i,
			DatabaseName: q.DatabaseName,
			SchemaName:   q.SchemaName,
			QueryText:    q.QueryText,
			ExecutedAt:   now,
			ExecutedBy:   in.CreatedBy,
		})
	}

	if err := s.repo.Create(ctx, c, queries); err != nil {
		return nil, err
	}
	return c, nil
}

// GetCase retrieves a case with its queries by id.
func (s *caseService) GetCase(ctx context.Context, id string) (*domain.CaseDetail, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCases returns a paginated, filtered, sorted page of cases. Page and
// size are normalized before hitting the repository.
func (s *caseService) ListCases(ctx context.Context, f domain.CaseFilters) (*domain.PaginatedResult[domain.Case], error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Size < 1 {
		f.Size = pkg.DefaultPageSize
	}
	if f.Size > pkg.MaxPageSize {
		f.Size = pkg.MaxPageSize
	}
	return s.repo.List(ctx, f)
}
