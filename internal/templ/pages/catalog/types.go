// Package catalog renders the paper and dataset listing pages.
package catalog

import (
	"github.com/DukeRupert/gnosis/internal/domain"
	"github.com/DukeRupert/gnosis/internal/pagination"
)

// Results container IDs, used as htmx swap targets.
const (
	PaperResultsID   = "paper-results"
	DatasetResultsID = "dataset-results"
	SearchResultsID  = "search-results"
)

// PaperListData contains data for the paper listing.
type PaperListData struct {
	Keywords string            // Search keywords as typed
	Papers   []domain.Paper    // Papers on the current page
	Total    int64             // Matching papers across all pages
	PerPage  int               // Page size
	Window   pagination.Window // Paginator state
}

// DatasetListData contains data for the dataset listing.
type DatasetListData struct {
	Keywords string
	Datasets []domain.Dataset
	Total    int64
	PerPage  int
	Window   pagination.Window
}

// SearchPageData contains both sections of the combined search page.
type SearchPageData struct {
	Keywords string
	Papers   PaperListData
	Datasets DatasetListData
}

// PageMeta is the shell data shared by every full page.
type PageMeta struct {
	Title       string
	CurrentPath string
}
