package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"grocery-tracker/core/config"
	"grocery-tracker/core/logger"
	"grocery-tracker/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the persistence backends",
	Long: `Checks that the documents table has every expected column and that the
storage bucket exists. With --fix, migrates the table and creates the bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fix, _ := cmd.Flags().GetBool("fix")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		b, err := openBackend(cmd.Context(), cfg, logg)
		if err != nil {
			return err
		}

		svc := integrity.NewService(cfg.Persistence.Backend, b.db, b.client, cfg.Storage.Bucket, cfg.Storage.Region, logg)
		report := svc.CheckAll(cmd.Context(), fix)

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		} else {
			logg.Info("Integrity check",
				zap.String("backend", report.Backend),
				zap.String("database", report.Database.Status),
				zap.Strings("database_missing", report.Database.Missing),
				zap.String("storage", report.Storage.Status))
		}

		if !report.Healthy() {
			return fmt.Errorf("integrity check failed")
		}
		return nil
	},
}

func init() {
	integrityCmd.Flags().Bool("fix", false, "Migrate the table and create the bucket when missing")
	integrityCmd.Flags().Bool("json", false, "Output as JSON")
	RootCmd.AddCommand(integrityCmd)
}
