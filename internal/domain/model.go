package domain

import "time"

// Status is the lifecycle state of a case. New cases always start as open.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Priority is the urgency level of a case.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Valid reports whether p is one of the known priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// CaseType classifies what kind of record a case is.
type CaseType string

const (
	TypeSupport       CaseType = "support"
	TypeRequirement   CaseType = "requirement"
	TypeInvestigation CaseType = "investigation"
)

// Valid reports whether t is one of the known case types.
func (t CaseType) Valid() bool {
	switch t {
	case TypeSupport, TypeRequirement, TypeInvestigation:
		return true
	}
	return false
}

// SortOrder is the direction of a sorted listing.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Valid reports whether o is "asc" or "desc".
func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

// Case is the list-view projection of a tracked case. QueriesCount is
// denormalized at creation time so listings never join the queries table.
type Case struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Description  string    `gorm:"size:2000;not null" json:"description"`
	CaseType     CaseType  `gorm:"size:20;not null;index" json:"case_type"`
	Priority     Priority  `gorm:"size:20;not null;index" json:"priority"`
	Status       Status    `gorm:"size:20;not null;index" json:"status"`
	CreatedBy    string    `gorm:"size:100;not null" json:"created_by"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	QueriesCount int       `gorm:"not null" json:"queries_count"`
}

// Query is a database query recorded against a case. The case_id is a
// back-reference only; queries are created together with their case and
// never detached or reassigned. Position preserves insertion order.
type Query struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	CaseID          string    `gorm:"size:36;not null;index" json:"case_id"`
	Position        int       `gorm:"not null" json:"-"`
	DatabaseName    string    `gorm:"size:100;not null" json:"database_name"`
	SchemaName      string    `gorm:"size:100;not null" json:"schema_name"`
	QueryText       string    `gorm:"size:5000;not null" json:"query_text"`
	ExecutionTimeMS *float64  `gorm:"column:execution_time_ms" json:"execution_time_ms"`
	RowsAffected    *int64    `json:"rows_affected"`
	ExecutedAt      time.Time `json:"executed_at"`
	ExecutedBy      string    `gorm:"size:100;not null" json:"executed_by"`
}

// CaseDetail is the detail-view projection: a case with its queries in
// insertion order. It is a wire type, not a table.
type CaseDetail struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CaseType    CaseType  `json:"case_type"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	Queries     []Query   `json:"queries"`
}

// CreateQueryInput is one query specification in a case creation request.
type CreateQueryInput struct {
	DatabaseName string `json:"database_name" yaml:"database_name" validate:"required,max=100"`
	SchemaName   string `json:"schema_name" yaml:"schema_name" validate:"required,max=100"`
	QueryText    string `json:"query_text" yaml:"query_text" validate:"required,min=5,max=5000"`
}

// CreateCaseInput is the payload for creating a case with 1 to 10 queries.
// Status, timestamps, ids and the queries count are assigned server-side.
type CreateCaseInput struct {
	Title       string             `json:"title" yaml:"title" validate:"required,min=5,max=200"`
	Description string             `json:"description" yaml:"description" validate:"required,min=10,max=2000"`
	CaseType    CaseType           `json:"case_type" yaml:"case_type" validate:"required,oneof=support requirement investigation"`
	Priority    Priority           `json:"priority" yaml:"priority" validate:"required,oneof=low medium high critical"`
	CreatedBy   string             `json:"created_by" yaml:"created_by" validate:"required,min=3,max=100"`
	Queries     []CreateQueryInput `json:"queries" yaml:"queries" validate:"required,min=1,max=10,dive"`
}

// CaseFilters describes the queryable, sortable, paginated view over cases.
// The zero value of an optional field means "absent". The struct is
// comparable, so filter values compare structurally and serialize into
// deterministic cache keys.
type CaseFilters struct {
	Page      int       `json:"page"`
	Size      int       `json:"size"`
	Status    Status    `json:"status,omitempty"`
	Priority  Priority  `json:"priority,omitempty"`
	CaseType  CaseType  `json:"case_type,omitempty"`
	Search    string    `json:"search,omitempty"`
	SortBy    string    `json:"sort_by,omitempty"`
	SortOrder SortOrder `json:"sort_order,omitempty"`
}

// PaginatedResult is one page of a listing plus pagination metadata.
// Pages is ceil(Total/Size).
type PaginatedResult[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}
