package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/DukeRupert/gnosis/internal/importer"
	"github.com/DukeRupert/gnosis/internal/repository"
	"github.com/DukeRupert/gnosis/internal/service"
	"github.com/spf13/cobra"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	var (
		file   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import papers and datasets from a YAML file",
		Long: `Reads a YAML document with "papers" and "datasets" lists and adds every
valid record to the catalog. Invalid records are reported and skipped.`,
		Example: `  # Import a file
  gnosisctl import --file papers.yaml

  # Check a file without touching the database
  gnosisctl import --file papers.yaml --dry-run

  # Read from stdin
  cat papers.yaml | gnosisctl import --file -`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := readImportFile(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			if dryRun {
				cmd.Printf("Parsed %d papers and %d datasets\n", len(f.Papers), len(f.Datasets))
				return nil
			}

			db, logger, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			repo := repository.New(db)
			im := importer.New(
				service.NewPaperService(repo, logger),
				service.NewDatasetService(repo, logger),
				logger,
			)

			sum, err := im.Run(cmd.Context(), f)
			printSummary(cmd, sum)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `YAML file to import ("-" for stdin)`)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse the file and report counts only")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readImportFile(stdin io.Reader, path string) (*importer.File, error) {
	if path == "-" {
		return importer.Parse(stdin)
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}
	defer fh.Close()

	return importer.Parse(fh)
}

func printSummary(cmd *cobra.Command, sum importer.Summary) {
	cmd.Printf("Imported %d papers and %d datasets in %s\n",
		sum.PapersImported, sum.DatasetsImported, sum.Duration.Round(time.Millisecond))

	for _, r := range sum.Rejected {
		cmd.Printf("  rejected %s #%d %q:\n", r.Kind, r.Index+1, r.Label)

		fields := make([]string, 0, len(r.Fields))
		for field := range r.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			cmd.Printf("    %s: %s\n", field, r.Fields[field])
		}
	}
}
