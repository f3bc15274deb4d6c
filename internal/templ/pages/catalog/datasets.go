package catalog

import (
	"context"
	"io"

	"github.com/DukeRupert/gnosis/internal/domain"
	"github.com/DukeRupert/gnosis/internal/templ/components/pagination"
	"github.com/DukeRupert/gnosis/internal/templ/markup"
	"github.com/a-h/templ"
)

// DatasetsPage renders the full dataset index page.
func DatasetsPage(meta PageMeta, data DatasetListData) templ.Component {
	return Layout(meta, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := markup.NewWriter(w)
		hw.Print(`<h1 class="mb-4 text-2xl font-semibold">Datasets</h1>`)
		searchForm(hw, "/catalog/datasets", data.Keywords, DatasetResultsID)
		hw.Render(ctx, DatasetResults(data, DatasetResultsID, pagination.Config{}))
		return hw.Err()
	}))
}

// DatasetResults renders the dataset list and its paginator.
func DatasetResults(data DatasetListData, id string, nav pagination.Config) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := markup.NewWriter(w)
		hw.Printf(`<section id="%s">`, esc(id))
		hw.Render(ctx, pagination.Summary(data.Window.Current, data.PerPage, data.Total))

		if len(data.Datasets) == 0 {
			hw.Print(`<p class="py-8 text-center text-gray-500">No datasets found.</p>`)
		} else {
			hw.Print(`<ul class="my-4 space-y-3">`)
			for _, d := range data.Datasets {
				writeDataset(hw, d)
			}
			hw.Print(`</ul>`)
		}

		if nav.TargetID == "" {
			nav.TargetID = id
		}
		nav.UseHtmx = true
		nav.PushURL = true
		hw.Render(ctx, pagination.Nav(data.Window, nav))
		hw.Print(`</section>`)
		return hw.Err()
	})
}

func writeDataset(hw *markup.Writer, d domain.Dataset) {
	hw.Printf(`<li class="%s">`, itemClass)
	if d.Website != "" {
		hw.Printf(`<a class="text-lg font-medium text-indigo-700" href="%s" rel="noopener">%s</a>`,
			safeHref(d.Website), esc(d.Name))
	} else {
		hw.Printf(`<span class="text-lg font-medium">%s</span>`, esc(d.Name))
	}
	if d.PublicationYear > 0 {
		hw.Printf(` <span class="text-sm text-gray-500">(%d)</span>`, d.PublicationYear)
	}
	hw.Printf(`<p class="mt-2 text-sm text-gray-600">%s</p>`, esc(d.Description))
	hw.Print(`</li>`)
}
