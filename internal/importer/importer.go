// Package importer loads catalog records from a YAML document.
//
// A document lists papers and datasets:
//
//	papers:
//	  - title: Graph Attention Networks
//	    abstract: ...
//	    keywords: gnn, attention
//	    download_link: https://arxiv.org/pdf/1710.10903
//	datasets:
//	  - name: Cora
//	    description: Citation network
//	    publication_year: 2000
//
// Records that fail validation are skipped and reported; any other error
// stops the import.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/DukeRupert/gnosis/internal/domain"
	"github.com/DukeRupert/gnosis/internal/metrics"
	"gopkg.in/yaml.v3"
)

// File is the YAML import document.
type File struct {
	Papers   []PaperRecord   `yaml:"papers"`
	Datasets []DatasetRecord `yaml:"datasets"`
}

// PaperRecord is one paper entry.
type PaperRecord struct {
	Title        string `yaml:"title"`
	Abstract     string `yaml:"abstract"`
	Keywords     string `yaml:"keywords"`
	DownloadLink string `yaml:"download_link"`
	SourceLink   string `yaml:"source_link"`
}

// DatasetRecord is one dataset entry.
type DatasetRecord struct {
	Name            string `yaml:"name"`
	Description     string `yaml:"description"`
	Keywords        string `yaml:"keywords"`
	SourceType      string `yaml:"source_type"`
	PublicationYear int    `yaml:"publication_year"`
	Website         string `yaml:"website"`
}

// PaperCreator is the subset of service.PaperService used for imports.
type PaperCreator interface {
	Create(ctx context.Context, params domain.CreatePaperParams) (*domain.Paper, error)
}

// DatasetCreator is the subset of service.DatasetService used for imports.
type DatasetCreator interface {
	Create(ctx context.Context, params domain.CreateDatasetParams) (*domain.Dataset, error)
}

// Rejection describes a record skipped by validation.
type Rejection struct {
	Kind   string            // "paper" or "dataset"
	Index  int               // Position in its list, 0-based
	Label  string            // Title or name as given
	Fields map[string]string // Field errors
}

// Summary reports the outcome of an import.
type Summary struct {
	PapersImported   int
	DatasetsImported int
	Rejected         []Rejection
	Duration         time.Duration
}

// Parse decodes an import document. Unknown keys are an error.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	return &f, nil
}

// Importer writes parsed records through the catalog services.
type Importer struct {
	papers   PaperCreator
	datasets DatasetCreator
	logger   *slog.Logger
}

// New creates an Importer.
func New(papers PaperCreator, datasets DatasetCreator, logger *slog.Logger) *Importer {
	return &Importer{papers: papers, datasets: datasets, logger: logger}
}

// Run imports every record of f, papers first.
func (im *Importer) Run(ctx context.Context, f *File) (Summary, error) {
	start := time.Now()
	var sum Summary
	defer func() {
		sum.Duration = time.Since(start)
		metrics.ImportFinished(sum.Duration)
	}()

	for i, rec := range f.Papers {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		_, err := im.papers.Create(ctx, domain.CreatePaperParams{
			Title:        rec.Title,
			Abstract:     rec.Abstract,
			Keywords:     rec.Keywords,
			DownloadLink: rec.DownloadLink,
			SourceLink:   rec.SourceLink,
		})
		if ok, err := im.record(&sum, "paper", i, rec.Title, err); err != nil {
			return sum, err
		} else if ok {
			sum.PapersImported++
		}
	}

	for i, rec := range f.Datasets {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		_, err := im.datasets.Create(ctx, domain.CreateDatasetParams{
			Name:            rec.Name,
			Description:     rec.Description,
			Keywords:        rec.Keywords,
			SourceType:      rec.SourceType,
			PublicationYear: rec.PublicationYear,
			Website:         rec.Website,
		})
		if ok, err := im.record(&sum, "dataset", i, rec.Name, err); err != nil {
			return sum, err
		} else if ok {
			sum.DatasetsImported++
		}
	}

	im.logger.Info("import finished",
		"papers", sum.PapersImported,
		"datasets", sum.DatasetsImported,
		"rejected", len(sum.Rejected),
	)
	return sum, nil
}

// record classifies the result of one Create call. It returns ok when the
// record was written and a non-nil error when the import must stop.
func (im *Importer) record(sum *Summary, kind string, index int, label string, err error) (bool, error) {
	if err == nil {
		metrics.RecordImported(kind)
		return true, nil
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		metrics.RecordRejected(kind)
		sum.Rejected = append(sum.Rejected, Rejection{Kind: kind, Index: index, Label: label, Fields: ve.Fields})
		im.logger.Warn("import record rejected", "kind", kind, "index", index, "fields", ve.Fields)
		return false, nil
	}

	return false, fmt.Errorf("import %s %d (%q): %w", kind, index, label, err)
}
