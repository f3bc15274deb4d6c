package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var datasetRowColumns = []string{"id", "name", "description", "keywords", "source_type", "publication_year", "website", "created_at"}

func TestQueries_ListDatasets(t *testing.T) {
	ctx := context.Background()
	q, mock := newMockQueries(t)

	id := uuid.New()
	mock.ExpectQuery(`FROM datasets\s+ORDER BY name ASC`).
		WithArgs(int32(20), int32(0)).
		WillReturnRows(sqlmock.NewRows(datasetRowColumns).
			AddRow(id.String(), "Cora", "Citation network", "citation", "N", int64(2000), nil, time.Now()))

	datasets, err := q.ListDatasets(ctx, ListDatasetsParams{Limit: 20})
	require.NoError(t, err)
	require.Len(t, datasets, 1)

	assert.Equal(t, id, datasets[0].ID)
	assert.Equal(t, sql.NullInt32{Int32: 2000, Valid: true}, datasets[0].PublicationYear)
	assert.False(t, datasets[0].Website.Valid)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueries_SearchAndCountDatasets(t *testing.T) {
	ctx := context.Background()
	q, mock := newMockQueries(t)

	mock.ExpectQuery(`FROM datasets\s+WHERE search @@`).
		WithArgs("citation", int32(5), int32(5)).
		WillReturnRows(sqlmock.NewRows(datasetRowColumns))
	mock.ExpectQuery(`SELECT count\(\*\) FROM datasets\s+WHERE search`).
		WithArgs("citation").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(6)))

	datasets, err := q.SearchDatasets(ctx, SearchDatasetsParams{PlaintoTsquery: "citation", Limit: 5, Offset: 5})
	require.NoError(t, err)
	assert.Empty(t, datasets)

	total, err := q.CountSearchDatasets(ctx, "citation")
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueries_CreateDataset(t *testing.T) {
	ctx := context.Background()
	q, mock := newMockQueries(t)

	id := uuid.New()
	mock.ExpectQuery(`INSERT INTO datasets`).
		WithArgs("Cora", "Citation network", sql.NullString{}, sql.NullString{String: "N", Valid: true}, sql.NullInt32{}, sql.NullString{}).
		WillReturnRows(sqlmock.NewRows(datasetRowColumns).
			AddRow(id.String(), "Cora", "Citation network", nil, "N", nil, nil, time.Now()))

	d, err := q.CreateDataset(ctx, CreateDatasetParams{
		Name:        "Cora",
		Description: "Citation network",
		SourceType:  sql.NullString{String: "N", Valid: true},
	})
	require.NoError(t, err)
	assert.Equal(t, id, d.ID)
	assert.Equal(t, "N", d.SourceType.String)
	require.NoError(t, mock.ExpectationsWereMet())
}
