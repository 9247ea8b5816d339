package integrity

import (
	"grocery-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/database", h.HandleDatabaseCheck)
	group.Get("/storage", h.HandleStorageCheck)
}

func statusOf(r CheckResult) int {
	if r.Status == StatusError {
		return fiber.StatusInternalServerError
	}
	return fiber.StatusOK
}

// HandleIntegrityCheck runs all backend checks.
// @Summary Run All Integrity Checks
// @Description Checks the documents table and the storage bucket. Backends not in use are skipped.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Migrate the table and create the bucket when missing"
// @Success 200 {object} Report
// @Failure 503 {object} Report
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report := h.service.CheckAll(c.Context(), fix)
	if !report.Healthy() {
		l.Warn("Integrity check found problems",
			zap.String("database", report.Database.Status),
			zap.String("storage", report.Storage.Status))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleDatabaseCheck checks the documents table.
// @Summary Check Database Schema
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Migrate the table when columns are missing"
// @Success 200 {object} CheckResult
// @Failure 500 {object} CheckResult
// @Router /integrity/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	res := h.service.CheckDatabase(c.Query("fix") == "true")
	if res.Status == StatusError {
		logger.WithRayID(h.service.logger, c).Error("Database check failed", zap.String("error", res.Error))
	}
	return c.Status(statusOf(res)).JSON(res)
}

// HandleStorageCheck checks the storage bucket.
// @Summary Check Storage Bucket
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} CheckResult
// @Failure 500 {object} CheckResult
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	res := h.service.CheckStorage(c.Context(), c.Query("fix") == "true")
	if res.Status == StatusError {
		logger.WithRayID(h.service.logger, c).Error("Storage check failed", zap.String("error", res.Error))
	}
	return c.Status(statusOf(res)).JSON(res)
}
