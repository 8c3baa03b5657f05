package pkg

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/dcdanielca/casetracker/internal/domain"
)

func listFiltersFor(t *testing.T, rawQuery string) domain.CaseFilters {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/cases?"+rawQuery, nil)
	return ParseListFilters(c)
}

func TestParseListFilters(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		want     domain.CaseFilters
	}{
		{
			name:     "defaults",
			rawQuery: "",
			want:     domain.CaseFilters{Page: 1, Size: DefaultPageSize},
		},
		{
			name:     "explicit size honored",
			rawQuery: "size=25",
			want:     domain.CaseFilters{Page: 1, Size: 25},
		},
		{
			name:     "size clamped to maximum",
			rawQuery: "size=500",
			want:     domain.CaseFilters{Page: 1, Size: MaxPageSize},
		},
		{
			name:     "non-numeric size ignored",
			rawQuery: "size=abc",
			want:     domain.CaseFilters{Page: 1, Size: DefaultPageSize},
		},
		{
			name:     "zero size ignored",
			rawQuery: "size=0",
			want:     domain.CaseFilters{Page: 1, Size: DefaultPageSize},
		},
		{
			name:     "filters and page pass through",
			rawQuery: "page=3&status=open&priority=high&search=timeout&sort_by=priority&sort_order=asc",
			want: domain.CaseFilters{
				Page:      3,
				Size:      DefaultPageSize,
				Status:    domain.StatusOpen,
				Priority:  domain.PriorityHigh,
				Search:    "timeout",
				SortBy:    "priority",
				SortOrder: domain.SortAsc,
			},
		},
		{
			name:     "invalid enums treated as absent",
			rawQuery: "status=archived&priority=urgent&case_type=bug",
			want:     domain.CaseFilters{Page: 1, Size: DefaultPageSize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := listFiltersFor(t, tt.rawQuery); got != tt.want {
				t.Errorf("ParseListFilters() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name      string
		items     []string
		total     int64
		page      int
		size      int
		wantPages int
	}{
		{name: "exact multiple", items: []string{"a"}, total: 20, page: 1, size: 10, wantPages: 2},
		{name: "partial last page", items: []string{"a"}, total: 21, page: 3, size: 10, wantPages: 3},
		{name: "empty listing", items: nil, total: 0, page: 1, size: 10, wantPages: 0},
		{name: "zero size", items: nil, total: 5, page: 1, size: 0, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPage(tt.items, tt.total, tt.page, tt.size)
			if got.Pages != tt.wantPages {
				t.Errorf("Pages = %d, want %d", got.Pages, tt.wantPages)
			}
			if got.Total != tt.total || got.Page != tt.page || got.Size != tt.size {
				t.Errorf("metadata = %+v", got)
			}
			if got.Items == nil {
				t.Error("Items = nil, want empty slice for JSON encoding")
			}
		})
	}
}

func openScopeTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	if err := db.AutoMigrate(&domain.Case{}); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		c := domain.Case{
			ID:        string(rune('a' + i)),
			Title:     "Caso " + string(rune('A'+i)),
			CaseType:  domain.TypeSupport,
			Priority:  domain.PriorityMedium,
			Status:    domain.StatusOpen,
			CreatedBy: "analista",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("seed case %d: %v", i, err)
		}
	}
	return db
}

func caseIDs(t *testing.T, db *gorm.DB, scopes ...func(*gorm.DB) *gorm.DB) []string {
	t.Helper()
	var cases []domain.Case
	if err := db.Scopes(scopes...).Find(&cases).Error; err != nil {
		t.Fatalf("Find: %v", err)
	}
	ids := make([]string, len(cases))
	for i, c := range cases {
		ids[i] = c.ID
	}
	return ids
}

func TestPaginate(t *testing.T) {
	db := openScopeTestDB(t)

	got := caseIDs(t, db, Paginate(2, 2), OrderBy("created_at", domain.SortAsc, []string{"created_at"}))
	if len(got) != 2 || got[0] != "c" || got[1] != "d" {
		t.Errorf("page 2 of size 2 = %v, want [c d]", got)
	}

	got = caseIDs(t, db, Paginate(3, 2), OrderBy("created_at", domain.SortAsc, []string{"created_at"}))
	if len(got) != 1 || got[0] != "e" {
		t.Errorf("last partial page = %v, want [e]", got)
	}
}

func TestOrderBy(t *testing.T) {
	db := openScopeTestDB(t)
	allowed := []string{"created_at", "title"}

	got := caseIDs(t, db, OrderBy("created_at", domain.SortDesc, allowed))
	if got[0] != "e" || got[len(got)-1] != "a" {
		t.Errorf("desc order = %v, want newest first", got)
	}

	got = caseIDs(t, db, OrderBy("created_at", domain.SortAsc, allowed))
	if got[0] != "a" || got[len(got)-1] != "e" {
		t.Errorf("asc order = %v, want oldest first", got)
	}
}

func TestOrderBy_RejectsUnsafeFields(t *testing.T) {
	db := openScopeTestDB(t)
	allowed := []string{"created_at", "title"}

	tests := []struct {
		name   string
		sortBy string
	}{
		{name: "empty field", sortBy: ""},
		{name: "field outside allowlist", sortBy: "priority"},
		{name: "injection attempt", sortBy: "created_at; DROP TABLE cases"},
		{name: "quoted field", sortBy: `title"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := caseIDs(t, db, OrderBy(tt.sortBy, domain.SortAsc, allowed))
			// Fallback is newest first.
			if got[0] != "e" {
				t.Errorf("order = %v, want created_at desc fallback", got)
			}
		})
	}
}
