package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Paper struct {
	ID           uuid.UUID
	Title        string
	Abstract     string
	Keywords     sql.NullString
	DownloadLink string
	SourceLink   sql.NullString
	CreatedAt    time.Time
}

const paperColumns = `id, title, abstract, keywords, download_link, source_link, created_at`

const listPapers = `-- name: ListPapers :many
SELECT ` + paperColumns + `
FROM papers
ORDER BY title ASC, created_at DESC
LIMIT $1 OFFSET $2
`

type ListPapersParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListPapers(ctx context.Context, arg ListPapersParams) ([]Paper, error) {
	rows, err := q.db.QueryContext(ctx, listPapers, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanPapers(rows)
}

const countPapers = `-- name: CountPapers :one
SELECT count(*) FROM papers
`

func (q *Queries) CountPapers(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countPapers)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const searchPapers = `-- name: SearchPapers :many
SELECT ` + paperColumns + `
FROM papers
WHERE search @@ plainto_tsquery('english', $1)
ORDER BY ts_rank(search, plainto_tsquery('english', $1)) DESC, title ASC
LIMIT $2 OFFSET $3
`

type SearchPapersParams struct {
	PlaintoTsquery string
	Limit          int32
	Offset         int32
}

func (q *Queries) SearchPapers(ctx context.Context, arg SearchPapersParams) ([]Paper, error) {
	rows, err := q.db.QueryContext(ctx, searchPapers, arg.PlaintoTsquery, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanPapers(rows)
}

const countSearchPapers = `-- name: CountSearchPapers :one
SELECT count(*) FROM papers
WHERE search @@ plainto_tsquery('english', $1)
`

func (q *Queries) CountSearchPapers(ctx context.Context, plaintoTsquery string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countSearchPapers, plaintoTsquery)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createPaper = `-- name: CreatePaper :one
INSERT INTO papers (title, abstract, keywords, download_link, source_link)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + paperColumns + `
`

type CreatePaperParams struct {
	Title        string
	Abstract     string
	Keywords     sql.NullString
	DownloadLink string
	SourceLink   sql.NullString
}

func (q *Queries) CreatePaper(ctx context.Context, arg CreatePaperParams) (Paper, error) {
	row := q.db.QueryRowContext(ctx, createPaper,
		arg.Title,
		arg.Abstract,
		arg.Keywords,
		arg.DownloadLink,
		arg.SourceLink,
	)
	var i Paper
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Abstract,
		&i.Keywords,
		&i.DownloadLink,
		&i.SourceLink,
		&i.CreatedAt,
	)
	return i, err
}

func scanPapers(rows *sql.Rows) ([]Paper, error) {
	defer rows.Close()
	var items []Paper
	for rows.Next() {
		var i Paper
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Abstract,
			&i.Keywords,
			&i.DownloadLink,
			&i.SourceLink,
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
