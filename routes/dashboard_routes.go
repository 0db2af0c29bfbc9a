package routes

import (
	"github.com/gofiber/fiber/v2"

	dashboardhandlers "undangan.link/handlers/dashboard"
	"undangan.link/middlewares"
	"undangan.link/models"
	"undangan.link/services"
)

func registerDashboardRoutes(app *fiber.App, templateService services.ITemplateService, musicService services.IMusicService) {
	homeHandler := dashboardhandlers.NewDashboardHomeHandler(templateService)
	orderHandler := dashboardhandlers.NewDashboardOrderHandler(musicService)
	templateHandler := dashboardhandlers.NewDashboardTemplateHandler(templateService)
	musicHandler := dashboardhandlers.NewDashboardMusicHandler(musicService)
	userHandler := dashboardhandlers.NewDashboardUserHandler()
	settingHandler := dashboardhandlers.NewDashboardSettingHandler()

	dashboard := app.Group("/dashboard", middlewares.AuthRequired())
	dashboard.Get("/", homeHandler.Index)

	// Pesanan: admin dan cs; penghapusan khusus admin.
	orders := dashboard.Group("/orders", middlewares.RequireRoles(models.RoleAdmin, models.RoleCS))
	orders.Get("/", orderHandler.ListOrders)
	orders.Get("/edit/:id", orderHandler.ShowEditOrder)
	orders.Get("/:id", orderHandler.ShowOrderDetail)
	orders.Post("/edit/:id", orderHandler.UpdateOrder)
	orders.Post("/process/:id", orderHandler.ProcessOrder)
	orders.Post("/delete/:id", middlewares.RequireAdmin(), orderHandler.DeleteOrder)

	// Tema: admin dan desainer; penghapusan khusus admin.
	templates := dashboard.Group("/templates", middlewares.RequireRoles(models.RoleAdmin, models.RoleDesigner))
	templates.Get("/", templateHandler.ListTemplates)
	templates.Get("/create", templateHandler.ShowCreateTemplate)
	templates.Post("/create", templateHandler.CreateTemplate)
	templates.Get("/edit/:id", templateHandler.ShowEditTemplate)
	templates.Post("/edit/:id", templateHandler.UpdateTemplate)
	templates.Get("/builder/:id", templateHandler.ShowBuilder)
	templates.Post("/builder/:id", templateHandler.SaveBuilder)
	templates.Get("/preview/:id", templateHandler.PreviewTemplate)
	templates.Post("/status/:id", templateHandler.SetTemplateStatus)
	templates.Post("/duplicate/:id", templateHandler.DuplicateTemplate)
	templates.Post("/delete/:id", middlewares.RequireAdmin(), templateHandler.DeleteTemplate)

	// Musik: admin saja.
	music := dashboard.Group("/music", middlewares.RequireAdmin())
	music.Get("/", musicHandler.ListMusic)
	music.Post("/create", musicHandler.CreateMusic)
	music.Post("/edit/:id", musicHandler.UpdateMusic)
	music.Post("/delete/:id", musicHandler.DeleteMusic)

	// Akun: admin saja.
	users := dashboard.Group("/users", middlewares.RequireAdmin())
	users.Get("/", userHandler.ListUsers)
	users.Get("/create", userHandler.ShowCreateUser)
	users.Post("/create", userHandler.CreateUser)
	users.Get("/edit/:id", userHandler.ShowEditUser)
	users.Post("/edit/:id", userHandler.UpdateUser)
	users.Post("/delete/:id", userHandler.DeleteUser)

	// Pengaturan: admin saja.
	settings := dashboard.Group("/settings", middlewares.RequireAdmin())
	settings.Get("/payment", settingHandler.ShowPaymentInfo)
	settings.Post("/payment", settingHandler.SavePaymentInfo)
	settings.Get("/site", settingHandler.ShowSiteSettings)
	settings.Post("/site", settingHandler.SaveSiteSettings)
}
