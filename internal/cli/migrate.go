package cli

import (
	"github.com/DukeRupert/gnosis/internal"
	"github.com/spf13/cobra"
)

// NewMigrateCmd creates the migrate command.
func NewMigrateCmd() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long: `Applies every pending migration to the database named by DATABASE_URL.

With --down the most recent migration is reverted instead.`,
		Example: `  # Bring the schema up to date
  gnosisctl migrate

  # Revert the last migration
  gnosisctl migrate --down`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, _, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			if down {
				err = internal.RollbackMigration(db)
			} else {
				err = internal.RunMigrations(db)
			}
			if err != nil {
				return err
			}

			version, err := internal.MigrationVersion(db)
			if err != nil {
				return err
			}
			cmd.Printf("Schema at version %d\n", version)
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "revert the most recent migration")

	return cmd
}
