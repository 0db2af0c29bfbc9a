package routes

import (
	"github.com/gofiber/fiber/v2"

	authhandlers "undangan.link/handlers/auth"
)

func registerAuthRoutes(app *fiber.App) {
	handler := authhandlers.NewAuthHandler()

	auth := app.Group("/auth")
	auth.Get("/login", handler.ShowLogin)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
}
