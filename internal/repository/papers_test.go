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

var paperRowColumns = []string{"id", "title", "abstract", "keywords", "download_link", "source_link", "created_at"}

func newMockQueries(t *testing.T) (*Queries, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func TestQueries_ListPapers(t *testing.T) {
	ctx := context.Background()
	q, mock := newMockQueries(t)

	id := uuid.New()
	created := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM papers\s+ORDER BY title ASC, created_at DESC\s+LIMIT \$1 OFFSET \$2`).
		WithArgs(int32(20), int32(40)).
		WillReturnRows(sqlmock.NewRows(paperRowColumns).
			AddRow(id.String(), "Graph Attention Networks", "abstract", "gnn", "https://arxiv.org/pdf/1710.10903", nil, created))

	papers, err := q.ListPapers(ctx, ListPapersParams{Limit: 20, Offset: 40})
	require.NoError(t, err)
	require.Len(t, papers, 1)

	assert.Equal(t, id, papers[0].ID)
	assert.Equal(t, "Graph Attention Networks", papers[0].Title)
	assert.Equal(t, sql.NullString{String: "gnn", Valid: true}, papers[0].Keywords)
	assert.False(t, papers[0].SourceLink.Valid)
	assert.Equal(t, created, papers[0].CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueries_SearchPapers(t *testing.T) {
	ctx := context.Background()
	q, mock := newMockQueries(t)

	mock.ExpectQuery(`WHERE search @@ plainto_tsquery\('english', \$1\)`).
		WithArgs("graph attention", int32(10), int32(0)).
		WillReturnRows(sqlmock.NewRows(paperRowColumns))

	papers, err := q.SearchPapers(ctx, SearchPapersParams{PlaintoTsquery: "graph attention", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, papers)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueries_CountPapers(t *testing.T) {
	ctx := context.Background()
	q, mock := newMockQueries(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM papers`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(137)))
	mock.ExpectQuery(`SELECT count\(\*\) FROM papers\s+WHERE search`).
		WithArgs("gnn").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

	total, err := q.CountPapers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(137), total)

	matched, err := q.CountSearchPapers(ctx, "gnn")
	require.NoError(t, err)
	assert.Equal(t, int64(4), matched)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueries_CreatePaper(t *testing.T) {
	ctx := context.Background()
	q, mock := newMockQueries(t)

	id := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO papers`).
		WithArgs("Title", "Abstract", sql.NullString{}, "https://example.com/a.pdf", sql.NullString{String: "https://example.com", Valid: true}).
		WillReturnRows(sqlmock.NewRows(paperRowColumns).
			AddRow(id.String(), "Title", "Abstract", nil, "https://example.com/a.pdf", "https://example.com", now))

	p, err := q.CreatePaper(ctx, CreatePaperParams{
		Title:        "Title",
		Abstract:     "Abstract",
		DownloadLink: "https://example.com/a.pdf",
		SourceLink:   sql.NullString{String: "https://example.com", Valid: true},
	})
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "https://example.com", p.SourceLink.String)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueries_ListPapers_QueryError(t *testing.T) {
	ctx := context.Background()
	q, mock := newMockQueries(t)

	mock.ExpectQuery(`FROM papers`).WillReturnError(sql.ErrConnDone)

	_, err := q.ListPapers(ctx, ListPapersParams{Limit: 20})
	assert.ErrorIs(t, err, sql.ErrConnDone)
}
