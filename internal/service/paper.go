// Package service contains the business logic layer.
//
// This file implements the paper service for listing, searching and
// adding catalog papers.
package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DukeRupert/gnosis/internal/domain"
	"github.com/DukeRupert/gnosis/internal/metrics"
	"github.com/DukeRupert/gnosis/internal/repository"
	"golang.org/x/text/cases"
)

// =============================================================================
// Interface Definition
// =============================================================================

// PaperService defines the interface for paper-related operations.
type PaperService interface {
	// List returns one page of papers. With keywords set, only papers
	// matching the full-text search are returned, best match first.
	// Total is the number of matching papers across all pages.
	List(ctx context.Context, params domain.ListParams) (*domain.PaperListResult, error)

	// Create adds a paper to the catalog.
	// Returns *domain.ValidationError for invalid input.
	Create(ctx context.Context, params domain.CreatePaperParams) (*domain.Paper, error)
}

// =============================================================================
// Implementation
// =============================================================================

type paperService struct {
	queries *repository.Queries
	logger  *slog.Logger
}

// NewPaperService creates a new PaperService.
func NewPaperService(queries *repository.Queries, logger *slog.Logger) PaperService {
	return &paperService{
		queries: queries,
		logger:  logger,
	}
}

// List returns one page of papers.
func (s *paperService) List(ctx context.Context, params domain.ListParams) (*domain.PaperListResult, error) {
	const op = "paper.list"

	if params.Limit <= 0 || params.Offset < 0 {
		return nil, domain.Invalid(op, "invalid page size or offset")
	}

	keywords := NormalizeKeywords(params.Keywords)

	var (
		rows  []repository.Paper
		total int64
		err   error
	)
	if keywords == "" {
		rows, err = s.queries.ListPapers(ctx, repository.ListPapersParams{
			Limit:  params.Limit,
			Offset: params.Offset,
		})
		if err != nil {
			return nil, domain.Internal(err, op, "failed to list papers")
		}
		total, err = s.queries.CountPapers(ctx)
	} else {
		metrics.SearchesTotal.WithLabelValues("papers").Inc()
		s.logger.Debug("searching papers", "keywords", keywords)

		rows, err = s.queries.SearchPapers(ctx, repository.SearchPapersParams{
			PlaintoTsquery: keywords,
			Limit:          params.Limit,
			Offset:         params.Offset,
		})
		if err != nil {
			return nil, domain.Internal(err, op, "failed to search papers")
		}
		total, err = s.queries.CountSearchPapers(ctx, keywords)
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to count papers")
	}

	papers := make([]domain.Paper, len(rows))
	for i, r := range rows {
		papers[i] = paperRowToDomain(r)
	}

	return &domain.PaperListResult{
		Papers: papers,
		Total:  total,
	}, nil
}

// Create adds a paper to the catalog.
func (s *paperService) Create(ctx context.Context, params domain.CreatePaperParams) (*domain.Paper, error) {
	const op = "paper.create"

	if err := params.Validate(); err != nil {
		return nil, err
	}

	row, err := s.queries.CreatePaper(ctx, repository.CreatePaperParams{
		Title:        strings.TrimSpace(params.Title),
		Abstract:     strings.TrimSpace(params.Abstract),
		Keywords:     domain.ToNullString(strings.TrimSpace(params.Keywords)),
		DownloadLink: strings.TrimSpace(params.DownloadLink),
		SourceLink:   domain.ToNullString(strings.TrimSpace(params.SourceLink)),
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to create paper")
	}

	metrics.CatalogEntriesCreated.WithLabelValues("paper").Inc()
	s.logger.Info("paper created", "paper_id", row.ID, "title", row.Title)

	paper := paperRowToDomain(row)
	return &paper, nil
}

// =============================================================================
// Helpers
// =============================================================================

// NormalizeKeywords trims, collapses whitespace and case-folds a search
// query so equivalent queries hit the same plan and the same counts.
func NormalizeKeywords(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}

func paperRowToDomain(r repository.Paper) domain.Paper {
	return domain.Paper{
		ID:           r.ID,
		Title:        r.Title,
		Abstract:     r.Abstract,
		Keywords:     domain.NullStringValue(r.Keywords),
		DownloadLink: r.DownloadLink,
		SourceLink:   domain.NullStringValue(r.SourceLink),
		CreatedAt:    r.CreatedAt,
	}
}
