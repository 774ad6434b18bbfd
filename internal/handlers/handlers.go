package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/notifyhub/backend/internal/repository"
	"github.com/notifyhub/backend/internal/services"
)

// respondError maps service and repository errors onto HTTP statuses:
// validation -> 400, not found -> 404, everything else -> 500.
func respondError(c *fiber.Ctx, err error) error {
	if services.IsValidation(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Not found",
		})
	}
	log.Printf("Store error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Dependency error",
	})
}
