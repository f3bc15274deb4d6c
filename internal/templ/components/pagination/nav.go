package pagination

import (
	"context"
	"io"
	"strconv"

	"github.com/DukeRupert/gnosis/internal/pagination"
	"github.com/DukeRupert/gnosis/internal/templ/markup"
	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

// Nav renders the paginator for a computed window.
//
// Two variants are emitted: a compact previous/next bar for narrow screens
// and the full page list for wider ones. A single-page window renders
// nothing.
func Nav(w pagination.Window, cfg Config) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		if len(w.Links) == 0 || w.Single() {
			return nil
		}

		hw := markup.NewWriter(out)

		hw.Printf(`<nav class="%s" aria-label="%s" data-shape="%s">`,
			attr(twmerge.Merge(navClass, cfg.Class)), attr(cfg.label()), attr(w.Shape()))

		// Mobile
		hw.Printf(`<div class="%s">`, mobileClass)
		writeStep(hw, w.Prev, "Previous", "prev", cfg)
		hw.Printf(`<span class="%s">Page %d of %d</span>`, pageCountClass, w.Current, w.Last)
		writeStep(hw, w.Next, "Next", "next", cfg)
		hw.Print(`</div>`)

		// Desktop
		hw.Printf(`<ul class="%s">`, desktopClass)
		hw.Print(`<li class="prev">`)
		writeStep(hw, w.Prev, "&laquo;", "prev", cfg)
		hw.Print(`</li>`)

		for i, link := range w.Links {
			if w.ShowTrailingEllipsis && i == len(w.Links)-1 {
				writeEllipsis(hw, "last_ellipsis")
			}

			if i == w.ActiveIndex {
				hw.Printf(`<li class="num_item active"><a class="%s" href="%s" aria-current="page"%s>%d</a></li>`,
					attr(twmerge.Merge(linkClass, activeClass)), attr(string(templ.URL(link.URL))), htmxAttrs(link, cfg), link.Page)
			} else {
				hw.Printf(`<li class="num_item"><a class="%s" href="%s"%s>%d</a></li>`,
					linkClass, attr(string(templ.URL(link.URL))), htmxAttrs(link, cfg), link.Page)
			}

			if w.ShowLeadingEllipsis && i == 0 {
				writeEllipsis(hw, "first_ellipsis")
			}
		}

		hw.Print(`<li class="next">`)
		writeStep(hw, w.Next, "&raquo;", "next", cfg)
		hw.Print(`</li>`)
		hw.Print(`</ul></nav>`)

		return hw.Err()
	})
}

// writeStep renders a previous or next control. label is trusted markup.
func writeStep(hw *markup.Writer, step func() (pagination.LinkTarget, bool), label, rel string, cfg Config) {
	link, ok := step()
	if !ok {
		hw.Printf(`<span class="%s" aria-disabled="true">%s</span>`,
			attr(twmerge.Merge(linkClass, disabledClass)), label)
		return
	}
	hw.Printf(`<a class="%s" href="%s" rel="%s" aria-label="Page %d"%s>%s</a>`,
		linkClass, attr(string(templ.URL(link.URL))), rel, link.Page, htmxAttrs(link, cfg), label)
}

func writeEllipsis(hw *markup.Writer, class string) {
	hw.Printf(`<li class="%s"><span class="%s">&hellip;</span></li>`, class, ellipsisClass)
}

func htmxAttrs(link pagination.LinkTarget, cfg Config) string {
	if !cfg.UseHtmx {
		return ""
	}
	s := ` hx-get="` + attr(link.URL) + `"`
	if cfg.TargetID != "" {
		s += ` hx-target="#` + attr(cfg.TargetID) + `" hx-swap="outerHTML"`
	}
	if cfg.PushURL {
		s += ` hx-push-url="true"`
	}
	return s
}

func attr(s string) string {
	return templ.EscapeString(s)
}

// Summary renders "Showing X to Y of Z results" for a page of a listing.
func Summary(page, perPage int, total int64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		if total == 0 {
			_, err := io.WriteString(out, `<p class="text-sm text-gray-700">No results</p>`)
			return err
		}
		from := int64(pagination.Offset(page, perPage)) + 1
		to := from + int64(perPage) - 1
		if to > total {
			to = total
		}
		_, err := io.WriteString(out, `<p class="text-sm text-gray-700">Showing <span class="font-medium">`+
			strconv.FormatInt(from, 10)+`</span> to <span class="font-medium">`+
			strconv.FormatInt(to, 10)+`</span> of <span class="font-medium">`+
			strconv.FormatInt(total, 10)+`</span> results</p>`)
		return err
	})
}
