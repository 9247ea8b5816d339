package spending

import (
	"context"

	"grocery-tracker/core/logger"
	"grocery-tracker/core/predictor"
	"grocery-tracker/core/reconcile"

	"go.uber.org/zap"
)

// Service predicts spending from a user's purchase log.
type Service struct {
	sessions   *reconcile.Sessions
	prediction *predictor.Service
	logger     *zap.Logger
}

// NewService creates a spending service.
func NewService(sessions *reconcile.Sessions, prediction *predictor.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{sessions: sessions, prediction: prediction, logger: logger}
}

// Predict returns a prediction for the user's purchases.
func (s *Service) Predict(ctx context.Context, ownerID string) (*predictor.Prediction, error) {
	purchases := s.sessions.Get(ctx, ownerID).Purchases()
	logger.WithOwner(s.logger, ownerID).Debug("Spending prediction requested", zap.Int("purchases", len(purchases)))
	return s.prediction.Predict(ctx, predictor.HistoryFromPurchases(purchases))
}
