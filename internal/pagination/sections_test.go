package pagination

import (
	"errors"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSections_KeepsSiblingPages(t *testing.T) {
	windows, err := ComputeSections("/catalog/search?keywords=gnn", []Section{
		{Param: "paper_page", Current: 2, First: 1, Last: 10},
		{Param: "dataset_page", Current: 1, First: 1, Last: 3},
	})
	require.NoError(t, err)
	require.Len(t, windows, 2)

	papers, datasets := windows[0], windows[1]

	assert.Equal(t, []int{1, 2, 3, 4, 10}, papers.Pages)
	assert.Equal(t, "/catalog/search?keywords=gnn&paper_page=4&dataset_page=1", papers.Links[3].URL)

	assert.Equal(t, []int{1, 2, 3}, datasets.Pages)
	assert.Equal(t, "/catalog/search?keywords=gnn&paper_page=2&dataset_page=3", datasets.Links[2].URL)
}

func TestComputeSections_LinksRoundTrip(t *testing.T) {
	sections := []Section{
		{Param: "paper_page", Current: 7, First: 1, Last: 12},
		{Param: "dataset_page", Current: 3, First: 1, Last: 8},
		{Param: "code_page", Current: 1, First: 1, Last: 1},
	}
	windows, err := ComputeSections("/catalog/search?keywords=x&paper_page=1", sections)
	require.NoError(t, err)

	for i, w := range windows {
		for _, link := range w.Links {
			u, err := url.Parse(link.URL)
			require.NoError(t, err)
			q := u.Query()

			assert.Equal(t, "x", q.Get("keywords"))
			for j, s := range sections {
				want := strconv.Itoa(s.Current)
				if i == j {
					want = strconv.Itoa(link.Page)
				}
				assert.Equal(t, want, q.Get(s.Param), "param %s in %q", s.Param, link.URL)
			}
		}
	}
}

func TestComputeSections_RejectsBadParams(t *testing.T) {
	_, err := ComputeSections("/", []Section{
		{Param: "page", Current: 1, First: 1, Last: 2},
		{Param: "page", Current: 1, First: 1, Last: 2},
	})
	assert.ErrorIs(t, err, ErrSectionParam)

	_, err = ComputeSections("/", []Section{{Param: "", Current: 1, First: 1, Last: 2}})
	assert.ErrorIs(t, err, ErrSectionParam)
}

func TestComputeSections_InvalidRange(t *testing.T) {
	_, err := ComputeSections("/", []Section{
		{Param: "paper_page", Current: 1, First: 1, Last: 2},
		{Param: "dataset_page", Current: 5, First: 1, Last: 2},
	})
	require.Error(t, err)

	var re *InvalidRangeError
	assert.True(t, errors.As(err, &re))
	assert.Contains(t, err.Error(), "dataset_page")
}

func TestComputeSections_Empty(t *testing.T) {
	windows, err := ComputeSections("/", nil)
	require.NoError(t, err)
	assert.Empty(t, windows)
}
