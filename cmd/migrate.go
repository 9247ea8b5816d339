package cmd

import (
	"fmt"

	"grocery-tracker/core/config"
	"grocery-tracker/core/database"
	"grocery-tracker/core/logger"
	"grocery-tracker/core/persistence"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCheck bool

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or check the documents table",
	Long: `Creates or updates the table used by the database persistence backend.
With --check, only reports the columns the table is missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
		store := persistence.NewDocumentStore(db)

		if migrateCheck {
			missing, err := store.MissingColumns()
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				logg.Warn("Documents table is out of date", zap.Strings("missing", missing))
				return fmt.Errorf("documents table is missing %d column(s)", len(missing))
			}
			logg.Info("Documents table is up to date")
			return nil
		}

		if err := store.Migrate(); err != nil {
			return err
		}
		logg.Info("Documents table migrated", zap.String("driver", cfg.Database.Driver))
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateCheck, "check", false, "Only report missing columns")
	RootCmd.AddCommand(migrateCmd)
}
