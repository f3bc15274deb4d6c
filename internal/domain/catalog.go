package domain

import "database/sql"

// ListParams selects one page of a catalog listing.
// An empty Keywords lists everything in catalog order.
type ListParams struct {
	Keywords string
	Limit    int32
	Offset   int32
}

// Searching reports whether the listing is filtered by keywords.
func (p ListParams) Searching() bool {
	return p.Keywords != ""
}

// PaperListResult contains one page of papers and the total match count.
type PaperListResult struct {
	Papers []Paper
	Total  int64
}

// DatasetListResult contains one page of datasets and the total match count.
type DatasetListResult struct {
	Datasets []Dataset
	Total    int64
}

// NullStringValue safely extracts a string from sql.NullString.
func NullStringValue(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// NullInt32Value extracts an int from sql.NullInt32, 0 when null.
func NullInt32Value(n sql.NullInt32) int {
	if n.Valid {
		return int(n.Int32)
	}
	return 0
}

// ToNullString converts an empty string to a null value.
func ToNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
