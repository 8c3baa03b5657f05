package tracker

// Pager models the pagination control over a listing: previous/next
// availability and the window of visible page numbers.
type Pager struct {
	Current int
	Total   int
}

// NewPager builds a Pager from pagination metadata.
func NewPager(page, pages int) Pager {
	return Pager{Current: page, Total: pages}
}

// HasPrev reports whether a previous page exists. It is false exactly when
// the current page is the first one.
func (p Pager) HasPrev() bool {
	return p.Current > 1
}

// HasNext reports whether a next page exists. It is false exactly when the
// current page is the last one.
func (p Pager) HasNext() bool {
	return p.Total > 0 && p.Current < p.Total
}

// Window returns the visible page numbers: up to five consecutive pages
// around the current one, clamped to [1, Total].
func (p Pager) Window() []int {
	if p.Total <= 0 {
		return nil
	}

	lo := p.Current - 3
	if lo < 0 {
		lo = 0
	}
	hi := p.Current + 2
	if hi > p.Total {
		hi = p.Total
	}
	if lo > hi {
		lo = hi
	}

	window := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		window = append(window, i+1)
	}
	return window
}
