package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Dataset represents a dataset that papers evaluate on or publish.
type Dataset struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Keywords        string    `json:"keywords,omitempty"`
	SourceType      string    `json:"source_type,omitempty"` // e.g. "N" network, "T" tabular
	PublicationYear int       `json:"publication_year,omitempty"`
	Website         string    `json:"website,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// KeywordList splits the comma-separated keywords into trimmed entries.
func (d *Dataset) KeywordList() []string {
	return splitKeywords(d.Keywords)
}

// CreateDatasetParams contains parameters for adding a dataset.
type CreateDatasetParams struct {
	Name            string // Required
	Description     string // Required
	Keywords        string // Optional
	SourceType      string // Optional
	PublicationYear int    // Optional, 0 when unknown
	Website         string // Optional, absolute URL
}

// Validate checks required fields and length limits.
func (p CreateDatasetParams) Validate() error {
	var err error
	if strings.TrimSpace(p.Name) == "" {
		err = AddFieldError(err, "name", "Name is required")
	} else if utf8.RuneCountInString(p.Name) > MaxTitleLength {
		err = AddFieldError(err, "name", "Name must be 500 characters or fewer")
	}
	if strings.TrimSpace(p.Description) == "" {
		err = AddFieldError(err, "description", "Description is required")
	}
	if utf8.RuneCountInString(p.Keywords) > MaxKeywordsLength {
		err = AddFieldError(err, "keywords", "Keywords must be 125 characters or fewer")
	}
	if p.PublicationYear < 0 || p.PublicationYear > 9999 {
		err = AddFieldError(err, "publication_year", "Publication year is not valid")
	}
	if msg := checkLink(p.Website, false); msg != "" {
		err = AddFieldError(err, "website", msg)
	}

	if err != nil {
		ve := err.(*ValidationError)
		ve.Op = "dataset.validate"
		return ve
	}
	return nil
}
