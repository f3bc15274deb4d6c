// Package handler contains HTTP handlers for the Gnosis catalog.
//
// This file implements the paged paper, dataset and combined search listings.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DukeRupert/gnosis/internal/domain"
	"github.com/DukeRupert/gnosis/internal/metrics"
	"github.com/DukeRupert/gnosis/internal/pagination"
	"github.com/DukeRupert/gnosis/internal/service"
	nav "github.com/DukeRupert/gnosis/internal/templ/components/pagination"
	"github.com/DukeRupert/gnosis/internal/templ/pages/catalog"
	"github.com/a-h/templ"
)

// Page parameters of the combined search page.
const (
	PaperPageParam   = "paper_page"
	DatasetPageParam = "dataset_page"
)

// =============================================================================
// Response Types
// =============================================================================

// PaperListResponse is the JSON form of a paper listing.
type PaperListResponse struct {
	Papers     []domain.Paper    `json:"papers"`
	Total      int64             `json:"total"`
	PerPage    int               `json:"per_page"`
	Pagination pagination.Window `json:"pagination"`
}

// DatasetListResponse is the JSON form of a dataset listing.
type DatasetListResponse struct {
	Datasets   []domain.Dataset  `json:"datasets"`
	Total      int64             `json:"total"`
	PerPage    int               `json:"per_page"`
	Pagination pagination.Window `json:"pagination"`
}

// SearchResponse is the JSON form of the combined search page.
type SearchResponse struct {
	Keywords string              `json:"keywords"`
	Papers   PaperListResponse   `json:"papers"`
	Datasets DatasetListResponse `json:"datasets"`
}

// =============================================================================
// Handler Configuration
// =============================================================================

// CatalogHandler serves the catalog listings.
type CatalogHandler struct {
	paperService   service.PaperService
	datasetService service.DatasetService
	perPage        int
	logger         *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler. perPage values below 1
// fall back to 20.
func NewCatalogHandler(
	paperService service.PaperService,
	datasetService service.DatasetService,
	perPage int,
	logger *slog.Logger,
) *CatalogHandler {
	if perPage < 1 {
		perPage = 20
	}
	return &CatalogHandler{
		paperService:   paperService,
		datasetService: datasetService,
		perPage:        perPage,
		logger:         logger,
	}
}

// =============================================================================
// Route Registration
// =============================================================================

// RegisterRoutes registers all catalog routes with the provided mux.
//
// Routes:
// - GET /catalog/papers   -> Papers
// - GET /catalog/datasets -> Datasets
// - GET /catalog/search   -> Search (wrapped by limitSearch)
func (h *CatalogHandler) RegisterRoutes(mux *http.ServeMux, limitSearch func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /catalog/papers", h.Papers)
	mux.HandleFunc("GET /catalog/datasets", h.Datasets)
	mux.Handle("GET /catalog/search", limitSearch(http.HandlerFunc(h.Search)))
}

// =============================================================================
// GET /catalog/papers
// =============================================================================

// Papers displays one page of papers, filtered by the keywords parameter.
func (h *CatalogHandler) Papers(w http.ResponseWriter, r *http.Request) {
	keywords := strings.TrimSpace(r.URL.Query().Get("keywords"))
	requested := pagination.ParsePage(r.URL.Query(), pagination.DefaultParam)

	data, err := h.loadPapers(r.Context(), keywords, requested)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	data.Window, err = pagination.Compute(data.Window.Current, data.Window.First, data.Window.Last, r.URL.RequestURI())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	metrics.WindowRendered(data.Window.Shape())

	if acceptsJSON(r) {
		h.writeJSON(w, r, paperResponse(data))
		return
	}

	var page templ.Component
	if isHtmx(r) {
		page = catalog.PaperResults(data, catalog.PaperResultsID, nav.Config{})
	} else {
		page = catalog.PapersPage(catalog.PageMeta{Title: "Papers", CurrentPath: r.URL.Path}, data)
	}
	h.render(w, r, page)
}

// =============================================================================
// GET /catalog/datasets
// =============================================================================

// Datasets displays one page of datasets, filtered by the keywords parameter.
func (h *CatalogHandler) Datasets(w http.ResponseWriter, r *http.Request) {
	keywords := strings.TrimSpace(r.URL.Query().Get("keywords"))
	requested := pagination.ParsePage(r.URL.Query(), pagination.DefaultParam)

	data, err := h.loadDatasets(r.Context(), keywords, requested)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	data.Window, err = pagination.Compute(data.Window.Current, data.Window.First, data.Window.Last, r.URL.RequestURI())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	metrics.WindowRendered(data.Window.Shape())

	if acceptsJSON(r) {
		h.writeJSON(w, r, datasetResponse(data))
		return
	}

	var page templ.Component
	if isHtmx(r) {
		page = catalog.DatasetResults(data, catalog.DatasetResultsID, nav.Config{})
	} else {
		page = catalog.DatasetsPage(catalog.PageMeta{Title: "Datasets", CurrentPath: r.URL.Path}, data)
	}
	h.render(w, r, page)
}

// =============================================================================
// GET /catalog/search
// =============================================================================

// Search displays papers and datasets matching the keywords as two
// independently paged sections.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	keywords := strings.TrimSpace(query.Get("keywords"))

	papers, err := h.loadPapers(r.Context(), keywords, pagination.ParsePage(query, PaperPageParam))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	datasets, err := h.loadDatasets(r.Context(), keywords, pagination.ParsePage(query, DatasetPageParam))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	windows, err := pagination.ComputeSections(r.URL.RequestURI(), []pagination.Section{
		{Param: PaperPageParam, Current: papers.Window.Current, First: papers.Window.First, Last: papers.Window.Last},
		{Param: DatasetPageParam, Current: datasets.Window.Current, First: datasets.Window.First, Last: datasets.Window.Last},
	})
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	papers.Window, datasets.Window = windows[0], windows[1]
	for _, win := range windows {
		metrics.WindowRendered(win.Shape())
	}

	if acceptsJSON(r) {
		h.writeJSON(w, r, SearchResponse{
			Keywords: keywords,
			Papers:   paperResponse(papers),
			Datasets: datasetResponse(datasets),
		})
		return
	}

	data := catalog.SearchPageData{Keywords: keywords, Papers: papers, Datasets: datasets}
	var page templ.Component
	if isHtmx(r) {
		page = catalog.SearchResults(data)
	} else {
		page = catalog.SearchPage(catalog.PageMeta{Title: "Search", CurrentPath: r.URL.Path}, data)
	}
	h.render(w, r, page)
}

// =============================================================================
// Helpers
// =============================================================================

// loadPapers fetches the requested page of papers. A page past the end is
// moved onto the last page and fetched again. The returned window carries
// only the resolved bounds; callers compute links for their own URL.
func (h *CatalogHandler) loadPapers(ctx context.Context, keywords string, page int) (catalog.PaperListData, error) {
	page = pagination.CapPage(page, h.perPage)
	params := domain.ListParams{Keywords: keywords, Limit: int32(h.perPage), Offset: int32(pagination.Offset(page, h.perPage))}
	result, err := h.paperService.List(ctx, params)
	if err != nil {
		return catalog.PaperListData{}, err
	}

	first, last := pagination.Bounds(int(result.Total), h.perPage)
	if clamped := pagination.Clamp(page, first, last); clamped != page {
		h.logger.Debug("page clamped", "catalog", "papers", "requested", page, "page", clamped)
		metrics.PageClamped.Inc()
		page = clamped
		params.Offset = int32(pagination.Offset(page, h.perPage))
		if result, err = h.paperService.List(ctx, params); err != nil {
			return catalog.PaperListData{}, err
		}
	}

	return catalog.PaperListData{
		Keywords: keywords,
		Papers:   result.Papers,
		Total:    result.Total,
		PerPage:  h.perPage,
		Window:   pagination.Window{Current: page, First: first, Last: last},
	}, nil
}

// loadDatasets is loadPapers for datasets.
func (h *CatalogHandler) loadDatasets(ctx context.Context, keywords string, page int) (catalog.DatasetListData, error) {
	page = pagination.CapPage(page, h.perPage)
	params := domain.ListParams{Keywords: keywords, Limit: int32(h.perPage), Offset: int32(pagination.Offset(page, h.perPage))}
	result, err := h.datasetService.List(ctx, params)
	if err != nil {
		return catalog.DatasetListData{}, err
	}

	first, last := pagination.Bounds(int(result.Total), h.perPage)
	if clamped := pagination.Clamp(page, first, last); clamped != page {
		h.logger.Debug("page clamped", "catalog", "datasets", "requested", page, "page", clamped)
		metrics.PageClamped.Inc()
		page = clamped
		params.Offset = int32(pagination.Offset(page, h.perPage))
		if result, err = h.datasetService.List(ctx, params); err != nil {
			return catalog.DatasetListData{}, err
		}
	}

	return catalog.DatasetListData{
		Keywords: keywords,
		Datasets: result.Datasets,
		Total:    result.Total,
		PerPage:  h.perPage,
		Window:   pagination.Window{Current: page, First: first, Last: last},
	}, nil
}

func paperResponse(data catalog.PaperListData) PaperListResponse {
	papers := data.Papers
	if papers == nil {
		papers = []domain.Paper{}
	}
	return PaperListResponse{Papers: papers, Total: data.Total, PerPage: data.PerPage, Pagination: data.Window}
}

func datasetResponse(data catalog.DatasetListData) DatasetListResponse {
	datasets := data.Datasets
	if datasets == nil {
		datasets = []domain.Dataset{}
	}
	return DatasetListResponse{Datasets: datasets, Total: data.Total, PerPage: data.PerPage, Pagination: data.Window}
}

func (h *CatalogHandler) render(w http.ResponseWriter, r *http.Request, page templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render catalog page", "error", err, "path", r.URL.Path)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *CatalogHandler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	if err := writeJSON(w, http.StatusOK, v); err != nil {
		h.logger.Error("failed to encode catalog response", "error", err, "path", r.URL.Path)
	}
}

func isHtmx(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
