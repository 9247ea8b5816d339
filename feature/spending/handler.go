package spending

import (
	"errors"

	"grocery-tracker/core/logger"
	"grocery-tracker/core/middleware/owner"
	"grocery-tracker/core/predictor"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for spending predictions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the spending routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/spending", owner.New())
	group.Post("/prediction", h.HandlePrediction)
}

// HandlePrediction asks the model for a monthly spending forecast.
// @Summary Predict Spending
// @Description Predicts monthly grocery spending and suggests savings from the purchase log. Needs at least 3 purchases.
// @Tags spending
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} predictor.Prediction
// @Failure 422 {object} map[string]string "Prediction unavailable"
// @Router /spending/prediction [post]
func (h *Handler) HandlePrediction(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	prediction, err := h.service.Predict(c.Context(), owner.Get(c))
	if err != nil {
		if errors.Is(err, predictor.ErrPredictionUnavailable) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": predictor.UserMessage(err),
			})
		}
		l.Error("Spending prediction failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(prediction)
}
