package catalog

import (
	"context"
	"io"

	"github.com/DukeRupert/gnosis/internal/domain"
	"github.com/DukeRupert/gnosis/internal/templ/components/pagination"
	"github.com/DukeRupert/gnosis/internal/templ/markup"
	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

const itemClass = "rounded-lg border bg-white p-4 shadow-sm"

// PapersPage renders the full paper index page.
func PapersPage(meta PageMeta, data PaperListData) templ.Component {
	return Layout(meta, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := markup.NewWriter(w)
		hw.Print(`<h1 class="mb-4 text-2xl font-semibold">Papers</h1>`)
		searchForm(hw, "/catalog/papers", data.Keywords, PaperResultsID)
		hw.Render(ctx, PaperResults(data, PaperResultsID, pagination.Config{}))
		return hw.Err()
	}))
}

// PaperResults renders the paper list and its paginator inside the
// container identified by id. It is also returned alone to htmx requests.
func PaperResults(data PaperListData, id string, nav pagination.Config) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := markup.NewWriter(w)
		hw.Printf(`<section id="%s">`, esc(id))
		hw.Render(ctx, pagination.Summary(data.Window.Current, data.PerPage, data.Total))

		if len(data.Papers) == 0 {
			hw.Print(`<p class="py-8 text-center text-gray-500">`)
			if data.Keywords != "" {
				hw.Printf(`No papers found matching &quot;%s&quot;.`, esc(data.Keywords))
			} else {
				hw.Print(`No papers found.`)
			}
			hw.Print(`</p>`)
		} else {
			hw.Print(`<ul class="my-4 space-y-3">`)
			for _, p := range data.Papers {
				writePaper(hw, p)
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

func writePaper(hw *markup.Writer, p domain.Paper) {
	hw.Printf(`<li class="%s">`, itemClass)
	hw.Printf(`<a class="text-lg font-medium text-indigo-700" href="%s" rel="noopener">%s</a>`,
		safeHref(p.DownloadLink), esc(p.Title))
	if kws := p.KeywordList(); len(kws) > 0 {
		hw.Print(`<div class="mt-1 flex flex-wrap gap-1">`)
		for _, k := range kws {
			hw.Printf(`<span class="%s">%s</span>`,
				twmerge.Merge("rounded px-2 py-0.5 text-xs", "bg-indigo-50 text-indigo-700"), esc(k))
		}
		hw.Print(`</div>`)
	}
	hw.Printf(`<p class="mt-2 line-clamp-3 text-sm text-gray-600">%s</p>`, esc(p.Abstract))
	if p.SourceLink != "" {
		hw.Printf(`<a class="text-xs text-gray-500" href="%s" rel="noopener">Source</a>`, safeHref(p.SourceLink))
	}
	hw.Print(`</li>`)
}
