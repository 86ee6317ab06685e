package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Home returns the service banner.
func Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Student Collaboration Hub API is running!",
		"version": "1.0.0",
	})
}

// HealthCheck reports liveness with the current UTC time.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
