// Package pagination provides the shared paginator component for list pages.
package pagination

// Config allows customization of paginator rendering.
type Config struct {
	TargetID string // htmx target, e.g., "paper-results"
	UseHtmx  bool   // Enable htmx partial loading
	PushURL  bool   // Update browser URL with hx-push-url
	Class    string // Extra classes merged onto the <nav> element
	Label    string // aria-label, defaults to "Pagination"
}

func (c Config) label() string {
	if c.Label == "" {
		return "Pagination"
	}
	return c.Label
}

// Base classes. Callers override them through Config.Class.
const (
	navClass       = "flex items-center justify-between border-t border-gray-200 px-4 py-3 sm:px-6"
	mobileClass    = "flex flex-1 items-center justify-between sm:hidden"
	desktopClass   = "hidden sm:flex sm:items-center sm:gap-1"
	linkClass      = "relative inline-flex items-center rounded-md px-3 py-2 text-sm font-medium text-gray-700 hover:bg-gray-50"
	activeClass    = "bg-indigo-600 text-white hover:bg-indigo-600"
	disabledClass  = "cursor-not-allowed text-gray-300 hover:bg-transparent"
	ellipsisClass  = "px-2 py-2 text-sm text-gray-500"
	pageCountClass = "text-sm text-gray-700"
)
