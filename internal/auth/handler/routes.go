package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/auth/jwt/login", h.Login)
	app.Post("/auth/register", h.Register)
	app.Get("/auth/google/login", h.GoogleLogin)
	app.Get("/auth/google/callback", h.GoogleCallback)
	app.Get("/login", h.LoginPage)

	app.Get("/me", h.RequireAuth, h.Me)

	users := app.Group("/users", h.RequireAuth)
	users.Get("/me", h.Profile)
	users.Patch("/me", h.UpdateProfile)
}
