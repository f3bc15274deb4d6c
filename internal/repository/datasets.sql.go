package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Dataset struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Keywords        sql.NullString
	SourceType      sql.NullString
	PublicationYear sql.NullInt32
	Website         sql.NullString
	CreatedAt       time.Time
}

const datasetColumns = `id, name, description, keywords, source_type, publication_year, website, created_at`

const listDatasets = `-- name: ListDatasets :many
SELECT ` + datasetColumns + `
FROM datasets
ORDER BY name ASC, created_at DESC
LIMIT $1 OFFSET $2
`

type ListDatasetsParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListDatasets(ctx context.Context, arg ListDatasetsParams) ([]Dataset, error) {
	rows, err := q.db.QueryContext(ctx, listDatasets, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanDatasets(rows)
}

const countDatasets = `-- name: CountDatasets :one
SELECT count(*) FROM datasets
`

func (q *Queries) CountDatasets(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countDatasets)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const searchDatasets = `-- name: SearchDatasets :many
SELECT ` + datasetColumns + `
FROM datasets
WHERE search @@ plainto_tsquery('english', $1)
ORDER BY ts_rank(search, plainto_tsquery('english', $1)) DESC, name ASC
LIMIT $2 OFFSET $3
`

type SearchDatasetsParams struct {
	PlaintoTsquery string
	Limit          int32
	Offset         int32
}

func (q *Queries) SearchDatasets(ctx context.Context, arg SearchDatasetsParams) ([]Dataset, error) {
	rows, err := q.db.QueryContext(ctx, searchDatasets, arg.PlaintoTsquery, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanDatasets(rows)
}

const countSearchDatasets = `-- name: CountSearchDatasets :one
SELECT count(*) FROM datasets
WHERE search @@ plainto_tsquery('english', $1)
`

func (q *Queries) CountSearchDatasets(ctx context.Context, plaintoTsquery string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countSearchDatasets, plaintoTsquery)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createDataset = `-- name: CreateDataset :one
INSERT INTO datasets (name, description, keywords, source_type, publication_year, website)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + datasetColumns + `
`

type CreateDatasetParams struct {
	Name            string
	Description     string
	Keywords        sql.NullString
	SourceType      sql.NullString
	PublicationYear sql.NullInt32
	Website         sql.NullString
}

func (q *Queries) CreateDataset(ctx context.Context, arg CreateDatasetParams) (Dataset, error) {
	row := q.db.QueryRowContext(ctx, createDataset,
		arg.Name,
		arg.Description,
		arg.Keywords,
		arg.SourceType,
		arg.PublicationYear,
		arg.Website,
	)
	var i Dataset
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Keywords,
		&i.SourceType,
		&i.PublicationYear,
		&i.Website,
		&i.CreatedAt,
	)
	return i, err
}

func scanDatasets(rows *sql.Rows) ([]Dataset, error) {
	defer rows.Close()
	var items []Dataset
	for rows.Next() {
		var i Dataset
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Description,
			&i.Keywords,
			&i.SourceType,
			&i.PublicationYear,
			&i.Website,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
