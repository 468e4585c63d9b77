package handler

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	autherror "github.com/mgallego/auth-service/internal/errors"
	authconstant "github.com/mgallego/auth-service/pkg/constant"
)

const bearerPrefix = "Bearer "

// RequireAuth resolves the bearer token to the current principal and stores it
// in the request locals. Every failure mode is a generic 401; store errors are
// the only 500s.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthenticated",
		})
	}

	user, err := h.userService.Resolve(c.Context(), strings.TrimPrefix(header, bearerPrefix))
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidToken) ||
			errors.Is(err, autherror.ErrUserNotFound) ||
			errors.Is(err, autherror.ErrInactiveAccount) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthenticated",
			})
		}

		slog.Error("principal resolution failed", "error", err)

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	c.Locals(authconstant.PrincipalKey, user)

	return c.Next()
}
