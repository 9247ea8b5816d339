package cmd

import (
	"errors"
	"fmt"

	"grocery-tracker/core/config"
	"grocery-tracker/core/logger"
	"grocery-tracker/core/predictor"

	"github.com/spf13/cobra"
)

// predictCmd represents the predict command
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict a user's monthly grocery spending",
	Long:  `Sends a user's stored purchase history to the configured model and prints the prediction.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		snap, err := loadSnapshot(ctx, cfg, logg, userID)
		if err != nil {
			return err
		}

		prediction, err := newPredictionService(ctx, cfg, logg).Predict(ctx, predictor.HistoryFromPurchases(snap.Purchases))
		if err != nil {
			return errors.New(predictor.UserMessage(err))
		}

		fmt.Printf("Predicted monthly spending: %.2f\n", prediction.PredictedSpending)
		fmt.Printf("Savings opportunities:\n%s\n", prediction.SavingsOpportunities)
		return nil
	},
}

func init() {
	predictCmd.Flags().String("user", "", "User ID")
	_ = predictCmd.MarkFlagRequired("user")
	RootCmd.AddCommand(predictCmd)
}
