package pagination

import (
	"errors"
	"fmt"
)

// ErrSectionParam is returned when a section has an empty parameter name or
// shares one with another section.
var ErrSectionParam = errors.New("pagination: section parameters must be unique and non-empty")

// Section describes one independently paged list on a page that shows several.
type Section struct {
	Param   string
	Current int
	First   int
	Last    int
}

// ComputeSections returns one window per section, in order.
//
// Every link keeps the other sections on their current page: following a
// link in one section never resets another. Sibling parameters are written
// in section order, so all links on the page share one parameter layout.
func ComputeSections(basePath string, sections []Section) ([]Window, error) {
	seen := make(map[string]struct{}, len(sections))
	for _, s := range sections {
		if s.Param == "" {
			return nil, ErrSectionParam
		}
		if _, dup := seen[s.Param]; dup {
			return nil, fmt.Errorf("%w: %q", ErrSectionParam, s.Param)
		}
		seen[s.Param] = struct{}{}
	}

	// Pin every section at its current page once; each window then only
	// rewrites its own parameter in place.
	pinned := basePath
	for _, s := range sections {
		pinned = PageURL(pinned, s.Param, s.Current)
	}

	windows := make([]Window, len(sections))
	for i, s := range sections {
		w, err := ComputeParam(s.Param, s.Current, s.First, s.Last, pinned)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", s.Param, err)
		}
		windows[i] = w
	}
	return windows, nil
}
