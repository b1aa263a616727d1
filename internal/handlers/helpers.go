package handlers

import (
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// idParam parses a positive integer route parameter.
func idParam(c *fiber.Ctx, name string) (uint, error) {
	v, err := c.ParamsInt(name)
	if err != nil || v <= 0 {
		return 0, apperrors.NewInvalidRequest("invalid " + name + " parameter")
	}
	return uint(v), nil
}
