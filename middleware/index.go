package middleware

import (
	"errors"
	"strings"

	"tiket_manager/constants"
	"tiket_manager/helper"
	"tiket_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// Protected memverifikasi JWT dari cookie "token" atau header Authorization: Bearer xxx
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.INVALID_TOKEN, err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// RequireRole dipasang setelah Protected
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, ok := helper.GetClaimsFromToken(c)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Unauthorized: No user information found in request.", nil)
		}

		if claim.Role != role {
			message := "Access denied: You must be a " + strings.ToUpper(role[:1]) + role[1:] + " to perform this action."
			return utils.ErrorResponse(c, fiber.StatusForbidden, message, nil)
		}

		return c.Next()
	}
}
