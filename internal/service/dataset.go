// Package service contains the business logic layer.
//
// This file implements the dataset service.
package service

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/DukeRupert/gnosis/internal/domain"
	"github.com/DukeRupert/gnosis/internal/metrics"
	"github.com/DukeRupert/gnosis/internal/repository"
)

// DatasetService defines the interface for dataset-related operations.
type DatasetService interface {
	// List returns one page of datasets, filtered by keywords when set.
	List(ctx context.Context, params domain.ListParams) (*domain.DatasetListResult, error)

	// Create adds a dataset to the catalog.
	Create(ctx context.Context, params domain.CreateDatasetParams) (*domain.Dataset, error)
}

type datasetService struct {
	queries *repository.Queries
	logger  *slog.Logger
}

// NewDatasetService creates a new DatasetService.
func NewDatasetService(queries *repository.Queries, logger *slog.Logger) DatasetService {
	return &datasetService{
		queries: queries,
		logger:  logger,
	}
}

func (s *datasetService) List(ctx context.Context, params domain.ListParams) (*domain.DatasetListResult, error) {
	const op = "dataset.list"

	if params.Limit <= 0 || params.Offset < 0 {
		return nil, domain.Invalid(op, "invalid page size or offset")
	}

	keywords := NormalizeKeywords(params.Keywords)

	var (
		rows  []repository.Dataset
		total int64
		err   error
	)
	if keywords == "" {
		rows, err = s.queries.ListDatasets(ctx, repository.ListDatasetsParams{
			Limit:  params.Limit,
			Offset: params.Offset,
		})
		if err != nil {
			return nil, domain.Internal(err, op, "failed to list datasets")
		}
		total, err = s.queries.CountDatasets(ctx)
	} else {
		metrics.SearchesTotal.WithLabelValues("datasets").Inc()

		rows, err = s.queries.SearchDatasets(ctx, repository.SearchDatasetsParams{
			PlaintoTsquery: keywords,
			Limit:          params.Limit,
			Offset:         params.Offset,
		})
		if err != nil {
			return nil, domain.Internal(err, op, "failed to search datasets")
		}
		total, err = s.queries.CountSearchDatasets(ctx, keywords)
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to count datasets")
	}

	datasets := make([]domain.Dataset, len(rows))
	for i, r := range rows {
		datasets[i] = datasetRowToDomain(r)
	}

	return &domain.DatasetListResult{
		Datasets: datasets,
		Total:    total,
	}, nil
}

func (s *datasetService) Create(ctx context.Context, params domain.CreateDatasetParams) (*domain.Dataset, error) {
	const op = "dataset.create"

	if err := params.Validate(); err != nil {
		return nil, err
	}

	var year sql.NullInt32
	if params.PublicationYear > 0 {
		year = sql.NullInt32{Int32: int32(params.PublicationYear), Valid: true}
	}

	row, err := s.queries.CreateDataset(ctx, repository.CreateDatasetParams{
		Name:            strings.TrimSpace(params.Name),
		Description:     strings.TrimSpace(params.Description),
		Keywords:        domain.ToNullString(strings.TrimSpace(params.Keywords)),
		SourceType:      domain.ToNullString(strings.TrimSpace(params.SourceType)),
		PublicationYear: year,
		Website:         domain.ToNullString(strings.TrimSpace(params.Website)),
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to create dataset")
	}

	metrics.CatalogEntriesCreated.WithLabelValues("dataset").Inc()
	s.logger.Info("dataset created", "dataset_id", row.ID, "name", row.Name)

	dataset := datasetRowToDomain(row)
	return &dataset, nil
}

func datasetRowToDomain(r repository.Dataset) domain.Dataset {
	return domain.Dataset{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		Keywords:        domain.NullStringValue(r.Keywords),
		SourceType:      domain.NullStringValue(r.SourceType),
		PublicationYear: domain.NullInt32Value(r.PublicationYear),
		Website:         domain.NullStringValue(r.Website),
		CreatedAt:       r.CreatedAt,
	}
}
