package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"undangan.link/configs/configslog"
	"undangan.link/middlewares"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/services"
)

// DashboardHomeHandler halaman ringkasan dashboard.
type DashboardHomeHandler struct {
	orderService    services.IOrderService
	templateService services.ITemplateService
}

// NewDashboardHomeHandler membuat handler ringkasan dashboard.
func NewDashboardHomeHandler(templateService services.ITemplateService) *DashboardHomeHandler {
	return &DashboardHomeHandler{
		orderService:    services.NewOrderService(),
		templateService: templateService,
	}
}

// Index ringkasan: jumlah pesanan, antrian pending, jumlah tema.
func (h *DashboardHomeHandler) Index(c *fiber.Ctx) error {
	totalOrders, pendingOrders, err := h.orderService.CountOrders(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard Index: gagal menghitung pesanan", zap.Error(err))
	}
	totalTemplates, err := h.templateService.CountTemplates(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard Index: gagal menghitung tema", zap.Error(err))
	}

	flash, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title":          "Dashboard",
		"UserName":       c.Locals(middlewares.LocalUserNameKey),
		"TotalOrders":    totalOrders,
		"PendingOrders":  pendingOrders,
		"TotalTemplates": totalTemplates,
	}
	renderer.SetFlashMessages(data, flash)
	return renderer.Render(c, "dashboard/home", "layouts/dashboard_layout", data)
}
