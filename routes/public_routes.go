package routes

import (
	"github.com/gofiber/fiber/v2"

	publichandlers "undangan.link/handlers/public"
	"undangan.link/services"
)

func registerPublicRoutes(app *fiber.App, templateService services.ITemplateService, musicService services.IMusicService) {
	handler := publichandlers.NewPublicHandler(templateService, musicService)

	app.Get("/", handler.Home)
	app.Get("/preview/:id", handler.PreviewTemplate)
	// Rute statis didaftarkan sebelum rute berparameter agar tidak tertangkap :id.
	app.Get("/order/success/:public_id", handler.ShowOrderSuccess)
	app.Get("/order/:id", handler.ShowOrderForm)
	app.Post("/order", handler.SubmitOrder)

	// Dokumen undangan jadi, disajikan verbatim.
	app.Get("/invitation/:slug", handler.ShowInvitation)
}
