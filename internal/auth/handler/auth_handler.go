package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/mgallego/auth-service/internal/auth/domain"
	"github.com/mgallego/auth-service/internal/auth/dto"
	"github.com/mgallego/auth-service/internal/auth/service"
	autherror "github.com/mgallego/auth-service/internal/errors"
	authconstant "github.com/mgallego/auth-service/pkg/constant"
)

type AuthHandler struct {
	userService   *service.UserService
	googleService service.GoogleAuthenticator
}

func NewAuthHandler(userService *service.UserService, googleService service.GoogleAuthenticator) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		googleService: googleService,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email and password are required",
		})
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrEmailAlreadyInUse) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		slog.Error("register failed", "error", err)

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewUserOutput(user))
}

// Login handles the OAuth2 password form: the username field carries the
// email. Invalid credentials come back as a generic 400 so callers cannot
// probe which factor failed.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	tokenResponse, err := h.userService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrInvalidCredentials):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": autherror.ErrInvalidCredentials.Error(),
			})
		case errors.Is(err, autherror.ErrInactiveAccount):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": autherror.ErrInvalidCredentials.Error(),
			})
		default:
			slog.Error("login failed", "error", err)

			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(tokenResponse)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := c.Locals(authconstant.PrincipalKey).(*domain.User)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"email": user.Email,
		"id":    user.ID,
	})
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user := c.Locals(authconstant.PrincipalKey).(*domain.User)

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	user := c.Locals(authconstant.PrincipalKey).(*domain.User)

	var input dto.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "password is required",
		})
	}

	updated, err := h.userService.UpdatePassword(c.Context(), user.ID, input.Password)
	if err != nil {
		slog.Error("password update failed", "user_id", user.ID, "error", err)

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(updated))
}

func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	return c.Redirect(h.googleService.LoginURL(), fiber.StatusFound)
}

// GoogleCallback completes the code exchange and hands the token back via a
// redirect query parameter, mirroring the shape existing clients expect.
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	tokenResponse, err := h.googleService.CompleteLogin(c.Context(), c.Query("code"))
	if err != nil {
		if errors.Is(err, autherror.ErrFederatedAuthFailed) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": autherror.ErrFederatedAuthFailed.Error(),
			})
		}

		slog.Error("google callback failed", "error", err)

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Redirect("/login?token="+tokenResponse.AccessToken, fiber.StatusFound)
}

func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

	return c.Status(fiber.StatusOK).SendString(loginPageHTML)
}

const loginPageHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Login</title>
</head>
<body>
  <form method="post" action="/auth/jwt/login">
    <input type="email" name="username" placeholder="Email" required>
    <input type="password" name="password" placeholder="Password" required>
    <button type="submit">Log in</button>
  </form>
  <a href="/auth/google/login">Log in with Google</a>
</body>
</html>
`
