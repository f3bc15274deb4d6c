package pagination

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Bounds returns the page range for total items shown perPage at a time.
// An empty listing still has one page.
func Bounds(total, perPage int) (first, last int) {
	if perPage < 1 || total <= 0 {
		return 1, 1
	}
	return 1, (total + perPage - 1) / perPage
}

// Clamp moves a requested page onto the nearest page of [first, last].
func Clamp(requested, first, last int) int {
	if requested < first {
		return first
	}
	if requested > last {
		return last
	}
	return requested
}

// Offset returns the row offset of page (1-based).
func Offset(page, perPage int) int {
	if page < 1 || perPage < 1 {
		return 0
	}
	return (page - 1) * perPage
}

// MaxPage is the highest page whose Offset fits in an int32 query argument.
func MaxPage(perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	return math.MaxInt32/perPage + 1
}

// CapPage lowers page to MaxPage(perPage). Listings never reach that far, so
// a capped page still lands past the end and is clamped once the total is
// known.
func CapPage(page, perPage int) int {
	return min(page, MaxPage(perPage))
}

// ParsePage reads a page number from query. Missing, malformed and
// non-positive values read as page 1. Values too large for an int read as
// math.MaxInt.
func ParsePage(query url.Values, param string) int {
	if param == "" {
		param = DefaultParam
	}
	s := strings.TrimSpace(query.Get(param))
	if s == "" {
		return 1
	}
	p, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) && p > 0 {
		return p
	}
	if err != nil || p < 1 {
		return 1
	}
	return p
}
