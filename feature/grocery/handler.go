package grocery

import (
	"errors"

	"grocery-tracker/core/logger"
	"grocery-tracker/core/middleware/owner"
	"grocery-tracker/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for purchases, pantry and shopping list.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the grocery routes. Every route requires the
// X-User-ID header.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	purchases := app.Group("/purchases", owner.New())
	purchases.Get("/", h.HandleListPurchases)
	purchases.Post("/", h.HandleAddPurchase)

	pantry := app.Group("/pantry", owner.New())
	pantry.Get("/", h.HandleListPantry)
	pantry.Delete("/:id", h.HandleRemoveFromPantry)

	list := app.Group("/shopping-list", owner.New())
	list.Get("/", h.HandleListShoppingList)
	list.Post("/", h.HandleAddShoppingListItem)
	// Registered before /:id so "completed" is not taken for an id.
	list.Delete("/completed", h.HandleClearCompleted)
	list.Patch("/:id/toggle", h.HandleToggleShoppingListItem)
	list.Delete("/:id", h.HandleRemoveShoppingListItem)

	app.Get("/dashboard", owner.New(), h.HandleDashboard)
}

// statusFor maps store errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, reconcile.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, reconcile.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, reconcile.ErrDuplicateInPantry), errors.Is(err, reconcile.ErrDuplicateInList):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	l := logger.WithRayID(h.service.logger, c)
	if status == fiber.StatusInternalServerError {
		l.Error("Grocery request failed", zap.Error(err))
	} else {
		l.Info("Grocery request rejected", zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string, details map[string]string) error {
	body := fiber.Map{"error": msg}
	if len(details) > 0 {
		body["fields"] = details
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// HandleListPurchases returns the purchase log.
// @Summary List Purchases
// @Description Returns every purchase of the user in the order they were recorded.
// @Tags purchases
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {array} reconcile.Purchase
// @Failure 401 {object} map[string]string "Missing user"
// @Router /purchases [get]
func (h *Handler) HandleListPurchases(c *fiber.Ctx) error {
	return c.JSON(h.service.Purchases(c.Context(), owner.Get(c)))
}

// HandleAddPurchase records a purchase and stocks the pantry.
// @Summary Add Purchase
// @Description Records a purchase and adds the item to the pantry. Rejected when the pantry already holds an item with the same name.
// @Tags purchases
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param purchase body PurchaseRequest true "Purchase"
// @Success 201 {object} PurchaseOutcome
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 409 {object} map[string]string "Already in pantry"
// @Router /purchases [post]
func (h *Handler) HandleAddPurchase(c *fiber.Ctx) error {
	var req PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body", nil)
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "validation failed", validationDetails(err))
	}

	out, err := h.service.AddPurchase(c.Context(), owner.Get(c), req.Draft())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// HandleListPantry returns the pantry sorted by expiry.
// @Summary List Pantry
// @Description Returns pantry items sorted by expiry date, soonest first, with their expiry status. Items without an expiry date come last.
// @Tags pantry
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param today query string false "Reference day (YYYY-MM-DD), defaults to the server's current day"
// @Success 200 {array} reconcile.PantryEntry
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /pantry [get]
func (h *Handler) HandleListPantry(c *fiber.Ctx) error {
	today, err := parseDay(c.Query("today"))
	if err != nil {
		return badRequest(c, "today must be a YYYY-MM-DD date", nil)
	}
	return c.JSON(h.service.Pantry(c.Context(), owner.Get(c), today))
}

// HandleRemoveFromPantry marks a pantry item as used.
// @Summary Use Pantry Item
// @Description Removes a pantry item. When the shopping list has no entry with the same name, an incomplete one is added.
// @Tags pantry
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Pantry item ID"
// @Success 200 {object} RemovalOutcome
// @Failure 404 {object} map[string]string "Not found"
// @Router /pantry/{id} [delete]
func (h *Handler) HandleRemoveFromPantry(c *fiber.Ctx) error {
	out, err := h.service.RemoveFromPantry(c.Context(), owner.Get(c), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// HandleListShoppingList returns the shopping list.
// @Summary List Shopping List
// @Tags shopping-list
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {array} reconcile.ShoppingListItem
// @Router /shopping-list [get]
func (h *Handler) HandleListShoppingList(c *fiber.Ctx) error {
	return c.JSON(h.service.ShoppingList(c.Context(), owner.Get(c)))
}

// HandleAddShoppingListItem adds an entry to the shopping list.
// @Summary Add Shopping List Item
// @Description Adds an incomplete entry. Rejected when an entry with the same name exists, completed or not.
// @Tags shopping-list
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param item body ShoppingListRequest true "Item"
// @Success 201 {object} ItemOutcome
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 409 {object} map[string]string "Already listed"
// @Router /shopping-list [post]
func (h *Handler) HandleAddShoppingListItem(c *fiber.Ctx) error {
	var req ShoppingListRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body", nil)
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "validation failed", validationDetails(err))
	}

	out, err := h.service.AddShoppingListItem(c.Context(), owner.Get(c), req.Name)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// HandleToggleShoppingListItem flips the completion flag of an entry.
// @Summary Toggle Shopping List Item
// @Tags shopping-list
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Item ID"
// @Success 200 {object} ItemOutcome
// @Failure 404 {object} map[string]string "Not found"
// @Router /shopping-list/{id}/toggle [patch]
func (h *Handler) HandleToggleShoppingListItem(c *fiber.Ctx) error {
	out, err := h.service.ToggleShoppingListItem(c.Context(), owner.Get(c), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// HandleRemoveShoppingListItem deletes an entry.
// @Summary Remove Shopping List Item
// @Tags shopping-list
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Item ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Not found"
// @Router /shopping-list/{id} [delete]
func (h *Handler) HandleRemoveShoppingListItem(c *fiber.Ctx) error {
	warnings, err := h.service.RemoveShoppingListItem(c.Context(), owner.Get(c), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	body := fiber.Map{"status": "removed"}
	if len(warnings) > 0 {
		body["warnings"] = warnings
	}
	return c.JSON(body)
}

// HandleClearCompleted deletes every completed entry.
// @Summary Clear Completed Items
// @Tags shopping-list
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} ClearOutcome
// @Router /shopping-list/completed [delete]
func (h *Handler) HandleClearCompleted(c *fiber.Ctx) error {
	return c.JSON(h.service.ClearCompleted(c.Context(), owner.Get(c)))
}

// HandleDashboard returns spending and stock totals.
// @Summary Dashboard
// @Description Total spent, counts per collection, expiry alerts and the most recent purchases.
// @Tags dashboard
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param today query string false "Reference day (YYYY-MM-DD)"
// @Success 200 {object} reconcile.Summary
// @Router /dashboard [get]
func (h *Handler) HandleDashboard(c *fiber.Ctx) error {
	today, err := parseDay(c.Query("today"))
	if err != nil {
		return badRequest(c, "today must be a YYYY-MM-DD date", nil)
	}
	return c.JSON(h.service.Dashboard(c.Context(), owner.Get(c), today))
}
