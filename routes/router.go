package routes

import (
	"github.com/gofiber/fiber/v2"

	"undangan.link/configs/configsapp"
	"undangan.link/pkg/mediastore"
	"undangan.link/services"
)

// SetupRoutes merangkai seluruh rute aplikasi: halaman publik, autentikasi,
// dan dashboard internal.
func SetupRoutes(app *fiber.App) {
	sidecar := mediastore.NewSidecarClient(configsapp.GetConfig().MediaSidecarURL)
	templateService := services.NewTemplateService(sidecar)
	musicService := services.NewMusicService(sidecar)

	registerPublicRoutes(app, templateService, musicService)
	registerAuthRoutes(app)
	registerDashboardRoutes(app, templateService, musicService)
}
