package spending

import (
	"grocery-tracker/core/predictor"
	"grocery-tracker/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the spending feature.
func NewFeature(sessions *reconcile.Sessions, prediction *predictor.Service, logger *zap.Logger) *Feature {
	svc := NewService(sessions, prediction, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "spending"
}

// IsEnabled reports whether a prediction service was provided.
func (f *Feature) IsEnabled() bool {
	return f.service.prediction != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
