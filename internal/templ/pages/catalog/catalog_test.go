package catalog

import (
	"bytes"
	"context"
	"testing"

	"github.com/DukeRupert/gnosis/internal/domain"
	"github.com/DukeRupert/gnosis/internal/pagination"
	nav "github.com/DukeRupert/gnosis/internal/templ/components/pagination"
	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestPapersPage(t *testing.T) {
	w, err := pagination.Compute(2, 1, 3, "/catalog/papers?keywords=gnn&page=2")
	require.NoError(t, err)

	html := renderString(t, PapersPage(PageMeta{Title: "Papers", CurrentPath: "/catalog/papers"}, PaperListData{
		Keywords: "gnn",
		Papers: []domain.Paper{{
			ID:           uuid.New(),
			Title:        "Graph <Attention> Networks",
			Abstract:     "Attention on graphs.",
			Keywords:     "gnn, attention",
			DownloadLink: "https://arxiv.org/pdf/1710.10903",
		}},
		Total:   45,
		PerPage: 20,
		Window:  w,
	}))

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<title>Papers | Gnosis</title>")
	assert.Contains(t, html, `href="/catalog/papers" aria-current="page"`)
	assert.Contains(t, html, "Graph &lt;Attention&gt; Networks")
	assert.Contains(t, html, `value="gnn"`)
	assert.Contains(t, html, `<section id="paper-results">`)
	assert.Contains(t, html, `hx-get="/catalog/papers?keywords=gnn&amp;page=3"`)
	assert.Contains(t, html, `hx-target="#paper-results"`)
	assert.Contains(t, html, ">attention</span>")
}

func TestPaperResults_Empty(t *testing.T) {
	w, err := pagination.Compute(1, 1, 1, "/catalog/papers")
	require.NoError(t, err)

	html := renderString(t, PaperResults(PaperListData{Keywords: "<x>", PerPage: 20, Window: w}, PaperResultsID, nav.Config{}))

	assert.Contains(t, html, "No papers found matching &quot;&lt;x&gt;&quot;.")
	assert.Contains(t, html, "No results")
	assert.NotContains(t, html, "<nav")
}

func TestDatasetResults(t *testing.T) {
	w, err := pagination.Compute(1, 1, 2, "/catalog/datasets")
	require.NoError(t, err)

	html := renderString(t, DatasetResults(DatasetListData{
		Datasets: []domain.Dataset{
			{Name: "Cora", Description: "Citation network", PublicationYear: 2000, Website: "https://linqs.org"},
			{Name: "Unlinked", Description: "No website"},
		},
		Total:   25,
		PerPage: 20,
		Window:  w,
	}, DatasetResultsID, nav.Config{}))

	assert.Contains(t, html, `<a class="text-lg font-medium text-indigo-700" href="https://linqs.org" rel="noopener">Cora</a>`)
	assert.Contains(t, html, "(2000)")
	assert.Contains(t, html, `<span class="text-lg font-medium">Unlinked</span>`)
	assert.Contains(t, html, `hx-target="#dataset-results"`)
}

func TestSearchPage_SectionsTargetWholeResults(t *testing.T) {
	windows, err := pagination.ComputeSections("/catalog/search?keywords=graph", []pagination.Section{
		{Param: "paper_page", Current: 2, First: 1, Last: 3},
		{Param: "dataset_page", Current: 1, First: 1, Last: 2},
	})
	require.NoError(t, err)

	html := renderString(t, SearchPage(PageMeta{Title: "Search", CurrentPath: "/catalog/search"}, SearchPageData{
		Keywords: "graph",
		Papers:   PaperListData{Keywords: "graph", PerPage: 20, Total: 45, Window: windows[0]},
		Datasets: DatasetListData{Keywords: "graph", PerPage: 20, Total: 30, Window: windows[1]},
	}))

	assert.Contains(t, html, `<div id="search-results">`)
	assert.Contains(t, html, `aria-label="Paper pages"`)
	assert.Contains(t, html, `aria-label="Dataset pages"`)
	assert.NotContains(t, html, `hx-target="#paper-results"`)
	assert.Contains(t, html, `hx-target="#search-results"`)
	assert.Contains(t, html, "paper_page=2&amp;dataset_page=2")
}

func TestSafeHrefRejectsScriptURLs(t *testing.T) {
	assert.NotContains(t, safeHref("javascript:alert(1)"), "javascript")
	assert.Equal(t, "https://example.com/a?b=1&amp;c=2", safeHref("https://example.com/a?b=1&c=2"))
}
