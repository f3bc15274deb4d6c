// Package domain contains core business types and interfaces.
//
// This file defines the Paper domain type, the central record of the
// research catalog.
package domain

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Field limits carried over from the catalog schema.
const (
	MaxTitleLength    = 500
	MaxKeywordsLength = 125
	MaxLinkLength     = 250
)

// =============================================================================
// Paper Domain Type
// =============================================================================

// Paper represents a research paper in the catalog.
type Paper struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Abstract     string    `json:"abstract"`
	Keywords     string    `json:"keywords,omitempty"`
	DownloadLink string    `json:"download_link"`
	SourceLink   string    `json:"source_link,omitempty"` // Site the metadata was collected from
	CreatedAt    time.Time `json:"created_at"`
}

// KeywordList splits the comma-separated keywords into trimmed entries.
func (p *Paper) KeywordList() []string {
	return splitKeywords(p.Keywords)
}

// =============================================================================
// Paper Service Parameters
// =============================================================================

// CreatePaperParams contains parameters for adding a paper to the catalog.
type CreatePaperParams struct {
	Title        string // Required
	Abstract     string // Required
	Keywords     string // Optional, comma separated
	DownloadLink string // Required, absolute URL
	SourceLink   string // Optional, absolute URL
}

// Validate checks required fields and length limits.
func (p CreatePaperParams) Validate() error {
	const op = "paper.validate"

	var err error
	if strings.TrimSpace(p.Title) == "" {
		err = AddFieldError(err, "title", "Title is required")
	} else if utf8.RuneCountInString(p.Title) > MaxTitleLength {
		err = AddFieldError(err, "title", "Title must be 500 characters or fewer")
	}
	if strings.TrimSpace(p.Abstract) == "" {
		err = AddFieldError(err, "abstract", "Abstract is required")
	}
	if utf8.RuneCountInString(p.Keywords) > MaxKeywordsLength {
		err = AddFieldError(err, "keywords", "Keywords must be 125 characters or fewer")
	}
	if msg := checkLink(p.DownloadLink, true); msg != "" {
		err = AddFieldError(err, "download_link", msg)
	}
	if msg := checkLink(p.SourceLink, false); msg != "" {
		err = AddFieldError(err, "source_link", msg)
	}

	if err != nil {
		ve := err.(*ValidationError)
		ve.Op = op
		return ve
	}
	return nil
}

// =============================================================================
// Helpers
// =============================================================================

func checkLink(raw string, required bool) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			return "Link is required"
		}
		return ""
	}
	if len(raw) > MaxLinkLength {
		return "Link must be 250 characters or fewer"
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "Link must be an http or https URL"
	}
	return ""
}

func splitKeywords(s string) []string {
	var out []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
