// Package filters keeps a domain.CaseFilters value consistent with a
// URL-encoded query-string representation, so a filtered and paginated case
// view is shareable, bookmarkable and navigable with browser history.
//
// Encode and Decode are pure; the Synchronizer layers update and reset
// semantics on top of a Store holding the authoritative url.Values. No
// in-memory copy of the filters survives outside the store.
package filters

import (
	"net/url"
	"strconv"

	"github.com/dcdanielca/casetracker/internal/domain"
)

// PageSize is the fixed page size of the case list. It is not controllable
// through the URL: Decode always reports this constant and Update never
// writes a size parameter.
const PageSize = 10

// Decode parses URL query parameters into the typed filter model. Unknown or
// invalid enum values are treated as absent, not as errors. Page is the first
// positive integer among the page parameters, defaulting to 1.
func Decode(values url.Values) domain.CaseFilters {
	f := domain.CaseFilters{
		Page: 1,
		Size: PageSize,
	}

	for _, raw := range values["page"] {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			f.Page = n
			break
		}
	}

	if st := domain.Status(values.Get("status")); st.Valid() {
		f.Status = st
	}
	if p := domain.Priority(values.Get("priority")); p.Valid() {
		f.Priority = p
	}
	if t := domain.CaseType(values.Get("case_type")); t.Valid() {
		f.CaseType = t
	}
	if o := domain.SortOrder(values.Get("sort_order")); o.Valid() {
		f.SortOrder = o
	}
	f.Search = values.Get("search")
	f.SortBy = values.Get("sort_by")

	return f
}

// Encode serializes a filter value to URL query parameters. Absent optional
// fields produce no parameter at all, never an empty one. The result is the
// full request form including page and size, suitable both for API calls and
// as a deterministic cache key via url.Values.Encode.
func Encode(f domain.CaseFilters) url.Values {
	values := url.Values{}

	if f.Page > 0 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	if f.Size > 0 {
		values.Set("size", strconv.Itoa(f.Size))
	}
	if f.Status != "" {
		values.Set("status", string(f.Status))
	}
	if f.Priority != "" {
		values.Set("priority", string(f.Priority))
	}
	if f.CaseType != "" {
		values.Set("case_type", string(f.CaseType))
	}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	if f.SortBy != "" {
		values.Set("sort_by", f.SortBy)
	}
	if f.SortOrder != "" {
		values.Set("sort_order", string(f.SortOrder))
	}

	return values
}
