package domain

import "context"

// CaseRepository defines the data access interface for cases and their queries.
// Cases are create-only: there are no update or delete operations.
type CaseRepository interface {
	Create(ctx context.Context, c *Case, queries []Query) error
	GetByID(ctx context.Context, id string) (*CaseDetail, error)
	List(ctx context.Context, f CaseFilters) (*PaginatedResult[Case], error)
}

// CaseService defines the business logic interface for cases.
type CaseService interface {
	CreateCase(ctx context.Context, in CreateCaseInput) (*Case, error)
	GetCase(ctx context.Context, id string) (*CaseDetail, error)
	ListCases(ctx context.Context, f CaseFilters) (*PaginatedResult[Case], error)
}
