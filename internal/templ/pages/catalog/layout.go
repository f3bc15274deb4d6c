package catalog

import (
	"context"
	"io"
	"strings"

	"github.com/DukeRupert/gnosis/internal/templ/markup"
	"github.com/a-h/templ"
)

var navLinks = []struct {
	Path  string
	Label string
}{
	{"/catalog/papers", "Papers"},
	{"/catalog/datasets", "Datasets"},
	{"/catalog/search", "Search"},
}

// Layout wraps body in the HTML document shell.
func Layout(meta PageMeta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := markup.NewWriter(w)
		hw.Print(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.Print(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.Printf(`<title>%s | Gnosis</title>`, esc(meta.Title))
		hw.Print(`<link rel="stylesheet" href="/static/css/output.css">`)
		hw.Print(`<script src="https://unpkg.com/htmx.org@2.0.4" defer></script>`)
		hw.Print(`</head><body class="bg-gray-50 text-gray-900"><header class="border-b bg-white"><nav class="mx-auto flex max-w-5xl gap-6 px-4 py-3">`)
		for _, l := range navLinks {
			current := ""
			if strings.HasPrefix(meta.CurrentPath, l.Path) {
				current = ` aria-current="page"`
			}
			hw.Printf(`<a class="text-sm font-medium" href="%s"%s>%s</a>`, l.Path, current, l.Label)
		}
		hw.Print(`</nav></header><main class="mx-auto max-w-5xl px-4 py-6">`)
		hw.Render(ctx, body)
		hw.Print(`</main></body></html>`)
		return hw.Err()
	})
}

// searchForm renders the keyword form. The form targets action and, when
// results is set, swaps that container through htmx.
func searchForm(hw *markup.Writer, action, keywords, results string) {
	hw.Printf(`<form class="mb-6 flex gap-2" method="get" action="%s"`, esc(action))
	if results != "" {
		hw.Printf(` hx-get="%s" hx-target="#%s" hx-swap="outerHTML" hx-push-url="true"`, esc(action), esc(results))
	}
	hw.Printf(`><input class="flex-1 rounded-md border px-3 py-2" type="search" name="keywords" value="%s" placeholder="Keywords">`, esc(keywords))
	hw.Print(`<button class="rounded-md bg-indigo-600 px-4 py-2 text-white" type="submit">Search</button></form>`)
}

func esc(s string) string {
	return templ.EscapeString(s)
}

func safeHref(s string) string {
	return esc(string(templ.URL(s)))
}

