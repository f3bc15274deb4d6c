// Package cli implements the gnosisctl command tree.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/DukeRupert/gnosis/internal"
	"github.com/spf13/cobra"

	// database/sql driver "pgx"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewRootCmd creates the gnosisctl root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gnosisctl",
		Short:         "Administer the Gnosis catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		NewMigrateCmd(),
		NewImportCmd(),
		NewWindowCmd(),
	)

	return cmd
}

// openDB loads configuration and opens a verified database connection.
func openDB(ctx context.Context) (*sql.DB, *slog.Logger, error) {
	cfg, err := internal.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("config initialization failed: %w", err)
	}
	logger := internal.NewLogger(os.Stderr, cfg.Env, cfg.LogLevel)

	db, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("database ping failed: %w", err)
	}
	return db, logger, nil
}
