package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DukeRupert/gnosis/internal/pagination"
	"github.com/spf13/cobra"
)

// NewWindowCmd creates the window command, which prints the paginator a
// listing would render.
func NewWindowCmd() *cobra.Command {
	var (
		current int
		first   int
		last    int
		path    string
		param   string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the pagination window for a page",
		Example: `  # Page 5 of 10
  gnosisctl window --current 5 --last 10 --path "/catalog/papers?keywords=gnn"

  # Machine-readable
  gnosisctl window --current 2 --last 4 --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := pagination.ComputeParam(param, current, first, last, path)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(w)
			}

			cmd.Println(FormatWindow(w))
			for _, l := range w.Links {
				cmd.Printf("  %d\t%s\n", l.Page, l.URL)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&current, "current", 1, "current page")
	cmd.Flags().IntVar(&first, "first", 1, "first page")
	cmd.Flags().IntVar(&last, "last", 1, "last page")
	cmd.Flags().StringVar(&path, "path", "/", "base path the links are built from")
	cmd.Flags().StringVar(&param, "param", pagination.DefaultParam, "page query parameter")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the window as JSON")

	return cmd
}

// FormatWindow renders a window on one line, e.g. "1 … 4 [5] 6 … 10".
func FormatWindow(w pagination.Window) string {
	parts := make([]string, 0, len(w.Pages)+2)
	for i, p := range w.Pages {
		if w.ShowTrailingEllipsis && i == len(w.Pages)-1 {
			parts = append(parts, "…")
		}
		if i == w.ActiveIndex {
			parts = append(parts, fmt.Sprintf("[%d]", p))
		} else {
			parts = append(parts, fmt.Sprint(p))
		}
		if w.ShowLeadingEllipsis && i == 0 {
			parts = append(parts, "…")
		}
	}
	return strings.Join(parts, " ")
}
