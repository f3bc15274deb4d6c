package catalog

import (
	"context"
	"io"

	"github.com/DukeRupert/gnosis/internal/templ/components/pagination"
	"github.com/DukeRupert/gnosis/internal/templ/markup"
	"github.com/a-h/templ"
)

// SearchPage renders papers and datasets as two independently paged
// sections. Each section's paginator carries the other section's page.
func SearchPage(meta PageMeta, data SearchPageData) templ.Component {
	return Layout(meta, SearchResults(data))
}

// SearchResults renders both sections without the document shell.
func SearchResults(data SearchPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := markup.NewWriter(w)
		hw.Printf(`<div id="%s">`, SearchResultsID)
		hw.Print(`<h1 class="mb-4 text-2xl font-semibold">Search</h1>`)
		searchForm(hw, "/catalog/search", data.Keywords, "")

		hw.Print(`<h2 class="mt-6 text-xl font-semibold">Papers</h2>`)
		hw.Render(ctx, PaperResults(data.Papers, PaperResultsID, pagination.Config{TargetID: SearchResultsID, Label: "Paper pages"}))

		hw.Print(`<h2 class="mt-6 text-xl font-semibold">Datasets</h2>`)
		hw.Render(ctx, DatasetResults(data.Datasets, DatasetResultsID, pagination.Config{TargetID: SearchResultsID, Label: "Dataset pages"}))
		hw.Print(`</div>`)
		return hw.Err()
	})
}
