package cases

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dcdanielca/casetracker/internal/domain"
	"github.com/dcdanielca/casetracker/internal/pkg"
)

// allowedSortFields lists the columns a listing may be sorted by.
var allowedSortFields = []string{"created_at", "title", "priority", "status", "queries_count"}

// caseRepository implements domain.CaseRepository using GORM.
type caseRepository struct {
	db *gorm.DB
}

// NewCaseRepository creates a CaseRepository backed by the given database.
func NewCaseRepository(db *gorm.DB) domain.CaseRepository {
	return &caseRepository{db: db}
}

// Create inserts a case and its queries atomically.
func (r *caseRepository) Create(ctx context.Context, c *domain.Case, queries []domain.Query) error {
	err := pkg.WithTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		if len(queries) > 0 {
			if err := tx.Create(&queries).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return mapError(err)
	}
	return nil
}

// GetByID retrieves a case and its queries in insertion order.
func (r *caseRepository) GetByID(ctx context.Context, id string) (*domain.CaseDetail, error) {
	var c domain.Case
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}

	var queries []domain.Query
	if err := r.db.WithContext(ctx).
		Where("case_id = ?", id).
		Order("position asc").
		Find(&queries).Error; err != nil {
		return nil, mapError(err)
	}

	return &domain.CaseDetail{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		CaseType:    c.CaseType,
		Priority:    c.Priority,
		Status:      c.Status,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		Queries:     queries,
	}, nil
}

// List returns one page of cases matching the filters.
func (r *caseRepository) List(ctx context.Context, f domain.CaseFilters) (*domain.PaginatedResult[domain.Case], error) {
	base := r.db.WithContext(ctx).Model(&domain.Case{}).Scopes(filterScope(f))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var items []domain.Case
	if err := base.Scopes(
		pkg.Paginate(f.Page, f.Size),
		pkg.OrderBy(f.SortBy, f.SortOrder, allowedSortFields),
	).Find(&items).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPage(items, total, f.Page, f.Size), nil
}

// filterScope applies the optional filter fields as WHERE conditions.
// Search matches title or description case-insensitively via LIKE.
func filterScope(f domain.CaseFilters) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Status != "" {
			db = db.Where("status = ?", f.Status)
		}
		if f.Priority != "" {
			db = db.Where("priority = ?", f.Priority)
		}
		if f.CaseType != "" {
			db = db.Where("case_type = ?", f.CaseType)
		}
		if f.Search != "" {
			pattern := "%" + f.Search + "%"
			db = db.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
		}
		return db
	}
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrCaseNotFound
	}
	return domain.NewAppError(domain.CodeInternal, "Error interno del servidor", err)
}
