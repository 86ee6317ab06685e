package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/BenDePortival/student-collaboration-api/domain"
	"github.com/BenDePortival/student-collaboration-api/internal/util"
)

// JwtAuthMiddleware gates access to protected routes. Rejections carry one of
// two generic messages; the concrete verification failure is only logged.
func JwtAuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(domain.ErrorResponse{Message: "Token is missing!"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(http.StatusUnauthorized).JSON(domain.ErrorResponse{Message: "Token is invalid!"})
		}

		userID, err := util.VerifyAccessToken(parts[1], secret)
		if err != nil {
			log.Printf("Rejected token on %s: %v", c.Path(), err)
			return c.Status(http.StatusUnauthorized).JSON(domain.ErrorResponse{Message: "Token is invalid!"})
		}

		// Store user ID in Locals for handlers to access
		c.Locals("x-user-id", userID)

		return c.Next()
	}
}
