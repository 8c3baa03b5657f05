package tracker

import (
	"reflect"
	"testing"
)

func TestPager_PrevNextAvailability(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		wantPrev bool
		wantNext bool
	}{
		{name: "first of many", current: 1, total: 10, wantPrev: false, wantNext: true},
		{name: "middle", current: 5, total: 10, wantPrev: true, wantNext: true},
		{name: "last of many", current: 10, total: 10, wantPrev: false, wantNext: false},
		{name: "single page", current: 1, total: 1, wantPrev: false, wantNext: false},
		{name: "no pages", current: 1, total: 0, wantPrev: false, wantNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager(tt.current, tt.total)
			if got := p.HasPrev(); got != tt.wantPrev {
				t.Errorf("HasPrev() = %v, want %v", got, tt.wantPrev)
			}
			if got := p.HasNext(); got != tt.wantNext {
				t.Errorf("HasNext() = %v, want %v", got, tt.wantNext)
			}
		})
	}
}

func TestPager_Window(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{name: "start of long listing", current: 1, total: 10, want: []int{1, 2, 3}},
		{name: "second page", current: 2, total: 10, want: []int{1, 2, 3, 4}},
		{name: "middle shows five", current: 5, total: 10, want: []int{3, 4, 5, 6, 7}},
		{name: "near end clamps", current: 9, total: 10, want: []int{7, 8, 9, 10}},
		{name: "end of long listing", current: 10, total: 10, want: []int{8, 9, 10}},
		{name: "short listing fits whole", current: 2, total: 3, want: []int{1, 2, 3}},
		{name: "single page", current: 1, total: 1, want: []int{1}},
		{name: "no pages", current: 1, total: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPager(tt.current, tt.total).Window()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Window() = %v, want %v", got, tt.want)
			}
		})
	}
}
