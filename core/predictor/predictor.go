package predictor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"grocery-tracker/core/reconcile"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MinHistory is the smallest purchase history worth sending to the model.
const MinHistory = 3

// ErrPredictionUnavailable means no prediction could be produced, either
// because the history is too short or because the model call failed.
var ErrPredictionUnavailable = errors.New("prediction unavailable")

// User-facing messages attached to ErrPredictionUnavailable.
const (
	MsgNotEnoughHistory = "add at least 3 purchases to get a prediction"
	MsgUnexpectedError  = "an unexpected error occurred while generating the prediction"
)

// HistoryEntry is one purchase as seen by the model.
type HistoryEntry struct {
	Item        string          `json:"item"`
	Price       decimal.Decimal `json:"price"`
	Date        civil.Date      `json:"date"`
	Supermarket string          `json:"supermarket,omitempty"`
}

// Prediction is the model output.
type Prediction struct {
	PredictedSpending    float64 `json:"predictedSpending"`
	SavingsOpportunities string  `json:"savingsOpportunities"`
}

// Predictor produces a spending prediction from a purchase history.
type Predictor interface {
	Predict(ctx context.Context, history []HistoryEntry) (*Prediction, error)
}

// HistoryFromPurchases converts the purchase log to model input.
func HistoryFromPurchases(purchases []reconcile.Purchase) []HistoryEntry {
	history := make([]HistoryEntry, 0, len(purchases))
	for _, p := range purchases {
		history = append(history, HistoryEntry{
			Item:        p.ItemName,
			Price:       p.Price,
			Date:        p.PurchaseDate,
			Supermarket: p.Supermarket,
		})
	}
	return history
}

// Service applies the caller-side rules around a Predictor.
type Service struct {
	predictor Predictor
	timeout   time.Duration
	logger    *zap.Logger
}

// NewService creates a prediction service. predictor may be nil when no
// model is configured; every call then fails with ErrPredictionUnavailable.
func NewService(predictor Predictor, timeout time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{predictor: predictor, timeout: timeout, logger: logger}
}

// Predict returns a prediction for the history. Short histories are
// rejected without calling the model.
func (s *Service) Predict(ctx context.Context, history []HistoryEntry) (*Prediction, error) {
	if len(history) < MinHistory {
		return nil, fmt.Errorf("%w: %s", ErrPredictionUnavailable, MsgNotEnoughHistory)
	}
	if s.predictor == nil {
		s.logger.Warn("Prediction requested but no predictor is configured")
		return nil, fmt.Errorf("%w: %s", ErrPredictionUnavailable, MsgUnexpectedError)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	prediction, err := s.predictor.Predict(ctx, history)
	if err != nil {
		s.logger.Error("Spending prediction failed", zap.Int("history", len(history)), zap.Error(err))
		return nil, fmt.Errorf("%w: %s", ErrPredictionUnavailable, MsgUnexpectedError)
	}
	return prediction, nil
}

// UserMessage returns the user-facing part of a prediction error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return strings.TrimPrefix(err.Error(), ErrPredictionUnavailable.Error()+": ")
}
