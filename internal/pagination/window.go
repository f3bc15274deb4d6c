// Package pagination computes the window of page links shown under a paged
// listing.
//
// A Window is an immutable value: it is recomputed from its inputs on every
// render and handed to a renderer, which binds it to anchors. Nothing in this
// package holds state between calls, so every function is safe for concurrent
// use.
package pagination

import "fmt"

const (
	// MaxVisible is the number of page links shown once a listing has more
	// pages than fit.
	MaxVisible = 5

	// DefaultParam is the query parameter carrying the page number.
	DefaultParam = "page"
)

// =============================================================================
// Types
// =============================================================================

// LinkTarget pairs a page number with the URL that requests it.
type LinkTarget struct {
	Page int    `json:"page"`
	URL  string `json:"url"`
}

// Window is the computed paginator state for one listing.
type Window struct {
	Current int    `json:"current"`
	First   int    `json:"first"`
	Last    int    `json:"last"`
	Param   string `json:"param"`

	// Pages are the page numbers rendered as links, in display order.
	Pages []int `json:"pages"`

	// ActiveIndex indexes Pages; Pages[ActiveIndex] == Current.
	ActiveIndex int `json:"active_index"`

	ShowLeadingEllipsis  bool `json:"show_leading_ellipsis"`
	ShowTrailingEllipsis bool `json:"show_trailing_ellipsis"`

	// Links holds one entry per element of Pages.
	Links []LinkTarget `json:"links"`

	// basePath is kept so Prev/Next can build links outside the window.
	basePath string
}

// InvalidRangeError reports inconsistent paginator bounds.
type InvalidRangeError struct {
	Current int
	First   int
	Last    int
}

func (e *InvalidRangeError) Error() string {
	if e.First > e.Last {
		return fmt.Sprintf("pagination: invalid range: first page %d is after last page %d", e.First, e.Last)
	}
	if e.First < 1 {
		return fmt.Sprintf("pagination: invalid range: first page %d is below 1", e.First)
	}
	return fmt.Sprintf("pagination: invalid range: page %d is outside [%d, %d]", e.Current, e.First, e.Last)
}

// =============================================================================
// Compute
// =============================================================================

// Compute returns the window for current within [first, last], with links
// built from basePath using the "page" query parameter.
//
// Every page is listed when the range holds at most MaxVisible pages, counted
// as last-first+1. For ranges starting at 1 that is last <= MaxVisible; a range
// like [3, 7] is also listed in full, without ellipses.
func Compute(current, first, last int, basePath string) (Window, error) {
	return ComputeParam(DefaultParam, current, first, last, basePath)
}

// ComputeParam is Compute with a caller-chosen page parameter name.
func ComputeParam(param string, current, first, last int, basePath string) (Window, error) {
	if first < 1 || first > last || current < first || current > last {
		return Window{}, &InvalidRangeError{Current: current, First: first, Last: last}
	}
	if param == "" {
		param = DefaultParam
	}

	w := Window{
		Current:  current,
		First:    first,
		Last:     last,
		Param:    param,
		basePath: basePath,
	}

	switch {
	case last-first+1 <= MaxVisible:
		w.Pages = sequence(first, last)

	case current <= first+2:
		w.Pages = []int{first, first + 1, first + 2, first + 3, last}
		w.ShowTrailingEllipsis = true

	case current >= last-2:
		w.Pages = []int{first, last - 3, last - 2, last - 1, last}
		w.ShowLeadingEllipsis = true

	default:
		w.Pages = []int{first, current - 1, current, current + 1, last}
		w.ShowLeadingEllipsis = true
		w.ShowTrailingEllipsis = true
	}

	for i, p := range w.Pages {
		if p == current {
			w.ActiveIndex = i
			break
		}
	}

	w.Links = make([]LinkTarget, len(w.Pages))
	for i, p := range w.Pages {
		w.Links[i] = LinkTarget{Page: p, URL: PageURL(basePath, param, p)}
	}

	return w, nil
}

func sequence(from, to int) []int {
	pages := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		pages = append(pages, p)
	}
	return pages
}

// =============================================================================
// Navigation helpers
// =============================================================================

// Active returns the link for the current page.
func (w Window) Active() LinkTarget {
	if len(w.Links) == 0 {
		return LinkTarget{}
	}
	return w.Links[w.ActiveIndex]
}

// Prev returns the link to the page before Current.
// ok is false on the first page.
func (w Window) Prev() (link LinkTarget, ok bool) {
	if w.Current <= w.First {
		return LinkTarget{}, false
	}
	return w.linkTo(w.Current - 1), true
}

// Next returns the link to the page after Current.
// ok is false on the last page.
func (w Window) Next() (link LinkTarget, ok bool) {
	if w.Current >= w.Last {
		return LinkTarget{}, false
	}
	return w.linkTo(w.Current + 1), true
}

// Single reports whether the listing fits on one page.
func (w Window) Single() bool {
	return w.First == w.Last
}

func (w Window) linkTo(page int) LinkTarget {
	for _, l := range w.Links {
		if l.Page == page {
			return l
		}
	}
	return LinkTarget{Page: page, URL: PageURL(w.basePath, w.Param, page)}
}

// Shape names the window layout: "full" when every page is listed,
// otherwise "start", "middle" or "end" by where the current page sits.
func (w Window) Shape() string {
	switch {
	case !w.ShowLeadingEllipsis && !w.ShowTrailingEllipsis:
		return "full"
	case !w.ShowLeadingEllipsis:
		return "start"
	case !w.ShowTrailingEllipsis:
		return "end"
	default:
		return "middle"
	}
}
