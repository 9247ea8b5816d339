package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"grocery-tracker/core/config"
	"grocery-tracker/core/logger"
	"grocery-tracker/core/reconcile"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
)

// pantryCmd represents the pantry command
var pantryCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Show a user's pantry with expiry status",
	Long: `Reads a user's pantry from the persistence backend and prints it sorted
by expiry date, soonest first. Outputs a table by default or JSON with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		todayFlag, _ := cmd.Flags().GetString("today")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		today := civil.DateOf(time.Now())
		if todayFlag != "" {
			d, err := civil.ParseDate(todayFlag)
			if err != nil {
				return fmt.Errorf("invalid --today: %w", err)
			}
			today = d
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		snap, err := loadSnapshot(cmd.Context(), cfg, logg, userID)
		if err != nil {
			return err
		}
		entries := reconcile.ClassifyPantry(snap.Pantry, today)

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		fmt.Printf("Pantry of %s on %s (%d items)\n", userID, today, len(entries))
		for _, e := range entries {
			expiry := "-"
			if e.ExpiryDate != nil {
				expiry = e.ExpiryDate.String()
			}
			fmt.Printf("  %-24s %-10s %-14s %s\n", e.Name, expiry, e.Expiry.State, e.Expiry.Message)
		}
		return nil
	},
}

func init() {
	pantryCmd.Flags().String("user", "", "User ID")
	pantryCmd.Flags().String("today", "", "Reference day (YYYY-MM-DD), defaults to today")
	pantryCmd.Flags().Bool("json", false, "Output as JSON")
	_ = pantryCmd.MarkFlagRequired("user")
	RootCmd.AddCommand(pantryCmd)
}
