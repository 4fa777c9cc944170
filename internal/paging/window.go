// Package paging builds pagination metadata and the page-control window
// rendered beneath paginated listings.
package paging

import (
	"math"

	"adboard/internal/core/domain"
)

// EntryKind discriminates the entries of a page-control window.
type EntryKind int

const (
	// Prev is the previous-page control.
	Prev EntryKind = iota
	// Page is a numbered page control.
	Page
	// Ellipsis marks pages elided between the window and an edge page.
	Ellipsis
	// Next is the next-page control.
	Next
)

// Entry is one control in a page window. Number is set for Page
// entries, Active marks the current page, Enabled applies to the
// Prev/Next controls.
type Entry struct {
	Kind    EntryKind
	Number  int
	Active  bool
	Enabled bool
}

// DefaultRadius is the number of pages shown on each side of the
// current page.
const DefaultRadius = 2

// DefaultWindow builds a page window with DefaultRadius.
func DefaultWindow(current, total int, hasPrev, hasNext bool) []Entry {
	return Window(current, total, hasPrev, hasNext, DefaultRadius)
}

// Window computes the ordered control entries for a pagination bar:
// prev, first page and ellipsis when the window is clipped on the left,
// the windowed page numbers, ellipsis and last page when clipped on the
// right, next. A single page needs no controls and yields nil.
func Window(current, total int, hasPrev, hasNext bool, radius int) []Entry {
	if total <= 1 {
		return nil
	}

	entries := []Entry{{Kind: Prev, Enabled: hasPrev}}

	start := max(1, current-radius)
	end := min(total, current+radius)

	if start > 1 {
		entries = append(entries, Entry{Kind: Page, Number: 1, Active: current == 1})
		if start > 2 {
			entries = append(entries, Entry{Kind: Ellipsis})
		}
	}
	for page := start; page <= end; page++ {
		entries = append(entries, Entry{Kind: Page, Number: page, Active: page == current})
	}
	if end < total {
		if end < total-1 {
			entries = append(entries, Entry{Kind: Ellipsis})
		}
		entries = append(entries, Entry{Kind: Page, Number: total, Active: current == total})
	}

	return append(entries, Entry{Kind: Next, Enabled: hasNext})
}

// Meta computes the pagination block for one page of a listing.
func Meta(page, perPage, total int) domain.Pagination {
	if perPage <= 0 {
		perPage = 1
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	return domain.Pagination{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalItems:      total,
		ItemsPerPage:    perPage,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
