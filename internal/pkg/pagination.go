package pkg

import (
	"math"
	"regexp"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dcdanielca/casetracker/internal/domain"
	"github.com/dcdanielca/casetracker/internal/filters"
)

const (
	// DefaultPageSize matches the fixed page size the web client requests.
	DefaultPageSize = 10
	// MaxPageSize caps explicit size parameters from other API consumers.
	MaxPageSize = 100
)

// validFieldName matches only alphanumeric characters and underscores.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ParseListFilters extracts the case listing parameters from the request
// query. Unlike the client-side decoder, the API honors an explicit size
// parameter, clamped to [1, MaxPageSize].
func ParseListFilters(c *gin.Context) domain.CaseFilters {
	f := filters.Decode(c.Request.URL.Query())

	f.Size = DefaultPageSize
	if raw := c.Query("size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			f.Size = min(n, MaxPageSize)
		}
	}

	return f
}

// Paginate returns a GORM scope that applies LIMIT and OFFSET.
func Paginate(page, size int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * size
		return db.Offset(offset).Limit(size)
	}
}

// OrderBy returns a GORM scope that applies ORDER BY for an allow-listed
// field. Unknown or malformed fields fall back to newest-first ordering.
// Field names are validated against a strict pattern to prevent SQL
// injection.
func OrderBy(sortBy string, order domain.SortOrder, allowed []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if sortBy == "" || !validFieldName.MatchString(sortBy) || !slices.Contains(allowed, sortBy) {
			return db.Order("created_at desc")
		}

		direction := "desc"
		if order == domain.SortAsc {
			direction = "asc"
		}
		return db.Order(sortBy + " " + direction)
	}
}

// NewPage assembles a PaginatedResult with the computed page count.
func NewPage[T any](items []T, total int64, page, size int) *domain.PaginatedResult[T] {
	pages := 0
	if size > 0 {
		pages = int(math.Ceil(float64(total) / float64(size)))
	}

	if items == nil {
		items = []T{}
	}

	return &domain.PaginatedResult[T]{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pages,
	}
}
