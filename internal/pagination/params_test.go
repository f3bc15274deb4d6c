package pagination

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	tests := []struct {
		total, perPage int
		wantLast       int
	}{
		{0, 20, 1},
		{-4, 20, 1},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{40, 20, 2},
		{41, 20, 3},
		{10, 0, 1},
	}

	for _, tt := range tests {
		first, last := Bounds(tt.total, tt.perPage)
		assert.Equal(t, 1, first)
		assert.Equal(t, tt.wantLast, last, "total=%d perPage=%d", tt.total, tt.perPage)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 1, 5))
	assert.Equal(t, 3, Clamp(3, 1, 5))
	assert.Equal(t, 5, Clamp(50, 1, 5))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 20))
	assert.Equal(t, 40, Offset(3, 20))
	assert.Equal(t, 0, Offset(0, 20))
	assert.Equal(t, 0, Offset(3, 0))
}

func TestCapPage(t *testing.T) {
	assert.Equal(t, 7, CapPage(7, 20))
	assert.Equal(t, MaxPage(20), CapPage(300000000, 20))
	assert.Equal(t, MaxPage(20), CapPage(math.MaxInt, 20))

	for _, perPage := range []int{1, 10, 20, 100} {
		offset := Offset(MaxPage(perPage), perPage)
		assert.LessOrEqual(t, offset, math.MaxInt32, "perPage=%d", perPage)
		assert.GreaterOrEqual(t, offset, 0, "perPage=%d", perPage)
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"page=4", 4},
		{"page=%204%20", 4},
		{"page=0", 1},
		{"page=-2", 1},
		{"page=abc", 1},
		{"other=3", 1},
		{"page=99999999999999999999999", math.MaxInt},
		{"page=-99999999999999999999999", 1},
	}

	for _, tt := range tests {
		q, err := url.ParseQuery(tt.raw)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, ParsePage(q, ""), "query %q", tt.raw)
	}

	q, _ := url.ParseQuery("dataset_page=6")
	assert.Equal(t, 6, ParsePage(q, "dataset_page"))
}
