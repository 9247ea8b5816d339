package owner

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const (
	// HeaderName is the request header naming the acting user.
	HeaderName = "X-User-ID"
	// LocalsKey is the fiber.Ctx locals key holding the owner id.
	LocalsKey = "owner_id"
)

// New creates a middleware requiring the X-User-ID header. Requests
// without it are rejected with 401 before reaching any handler.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get(HeaderName))
		if id == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing " + HeaderName + " header",
			})
		}
		// Header values point into a pooled buffer; the id outlives the request.
		c.Locals(LocalsKey, utils.CopyString(id))
		return c.Next()
	}
}

// Get returns the owner id set by the middleware.
func Get(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsKey).(string)
	return id
}
