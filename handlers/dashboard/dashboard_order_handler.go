package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"undangan.link/configs/configslog"
	"undangan.link/middlewares"
	"undangan.link/models"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/queryparams"
	"undangan.link/pkg/renderer"
	"undangan.link/services"
)

// DashboardOrderHandler halaman pesanan di dashboard internal.
type DashboardOrderHandler struct {
	service      services.IOrderService
	musicService services.IMusicService
}

// NewDashboardOrderHandler membuat handler pesanan dashboard.
func NewDashboardOrderHandler(musicService services.IMusicService) *DashboardOrderHandler {
	return &DashboardOrderHandler{
		service:      services.NewOrderService(),
		musicService: musicService,
	}
}

// ListOrders daftar pesanan dengan filter status dan pencarian nama.
func (h *DashboardOrderHandler) ListOrders(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("ListOrders: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.GetOrdersPaginated(c.UserContext(), params)

	flash, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title":  "Pesanan",
		"Result": result,
		"Params": params,
	}
	renderer.SetFlashMessages(data, flash)
	if err != nil {
		data[renderer.FlashErrorKeyView] = "Daftar pesanan gagal dimuat."
		data["Result"] = &queryparams.PaginatedResult{Data: []models.Order{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("ListOrders: service error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/orders/list", "layouts/dashboard_layout", data, http.StatusOK)
}

// ShowOrderDetail detail satu pesanan beserta link undangannya bila ada.
func (h *DashboardOrderHandler) ShowOrderDetail(c *fiber.Ctx) error {
	orderID, ok := parseIDParam(c)
	if !ok {
		return c.Redirect("/dashboard/orders", fiber.StatusSeeOther)
	}

	order, err := h.service.GetOrderByID(c.UserContext(), orderID)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, orderErrMessage(err))
		return c.Redirect("/dashboard/orders", fiber.StatusSeeOther)
	}

	flash, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title": fmt.Sprintf("Pesanan %s & %s", order.GroomNickname, order.BrideNickname),
		"Order": order,
	}
	renderer.SetFlashMessages(data, flash)
	return renderer.Render(c, "dashboard/orders/detail", "layouts/dashboard_layout", data)
}

// ShowEditOrder form edit data pesanan.
func (h *DashboardOrderHandler) ShowEditOrder(c *fiber.Ctx) error {
	orderID, ok := parseIDParam(c)
	if !ok {
		return c.Redirect("/dashboard/orders", fiber.StatusSeeOther)
	}

	order, err := h.service.GetOrderByID(c.UserContext(), orderID)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, orderErrMessage(err))
		return c.Redirect("/dashboard/orders", fiber.StatusSeeOther)
	}

	musics, err := h.musicService.GetAllMusic(c.UserContext())
	if err != nil {
		configslog.Log.Error("ShowEditOrder: gagal memuat musik", zap.Error(err))
	}

	flash, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title":    "Edit Pesanan",
		"Order":    order,
		"Musics":   musics,
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(data, flash)
	return renderer.Render(c, "dashboard/orders/edit", "layouts/dashboard_layout", data)
}

// UpdateOrder menyimpan perubahan pesanan; undangan yang sudah diproses
// digenerate ulang dengan link tetap.
func (h *DashboardOrderHandler) UpdateOrder(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)
	orderID, ok := parseIDParam(c)
	if !ok {
		return c.Redirect("/dashboard/orders", fiber.StatusSeeOther)
	}
	redirectOnError := fmt.Sprintf("/dashboard/orders/edit/%d", orderID)

	input, err := parseOrderForm(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Form tidak valid: "+err.Error())
		return c.Redirect(redirectOnError, fiber.StatusSeeOther)
	}

	if _, err := h.service.UpdateOrder(c.UserContext(), orderID, userID, input); err != nil {
		if !errors.Is(err, services.ErrOrderNotFound) && !errors.Is(err, services.ErrOrderInvalidInput) {
			configslog.Log.Error("UpdateOrder: service error", zap.Uint("id", orderID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, orderErrMessage(err))
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect(redirectOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Pesanan berhasil diperbarui.")
	return c.Redirect(fmt.Sprintf("/dashboard/orders/%d", orderID), fiber.StatusFound)
}

// ProcessOrder menggenerate undangan dan menetapkan link publiknya.
func (h *DashboardOrderHandler) ProcessOrder(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)
	orderID, ok := parseIDParam(c)
	if !ok {
		return c.Redirect("/dashboard/orders", fiber.StatusSeeOther)
	}

	order, err := h.service.ProcessOrder(c.UserContext(), orderID, userID)
	if err != nil {
		if !errors.Is(err, services.ErrOrderNotFound) && !errors.Is(err, services.ErrOrderLinkConflict) {
			configslog.Log.Error("ProcessOrder: service error", zap.Uint("id", orderID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, orderErrMessage(err))
		return c.Redirect(fmt.Sprintf("/dashboard/orders/%d", orderID), fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey,
		"Undangan berhasil dibuat: "+*order.InvitationLink)
	return c.Redirect(fmt.Sprintf("/dashboard/orders/%d", orderID), fiber.StatusFound)
}

// DeleteOrder menghapus pesanan. Rute ini dibatasi ke admin lewat middleware;
// peran cs hanya membaca dan memproses.
func (h *DashboardOrderHandler) DeleteOrder(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)
	orderID, ok := parseIDParam(c)
	if !ok {
		return c.Redirect("/dashboard/orders", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteOrder(c.UserContext(), orderID, userID); err != nil {
		if !errors.Is(err, services.ErrOrderNotFound) {
			configslog.Log.Error("DeleteOrder: service error", zap.Uint("id", orderID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, orderErrMessage(err))
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Pesanan dihapus.")
	}
	return c.Redirect("/dashboard/orders", fiber.StatusSeeOther)
}

func orderErrMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		return "Pesanan tidak ditemukan."
	case errors.Is(err, services.ErrOrderTemplateGone):
		return "Tema pesanan tidak ditemukan."
	case errors.Is(err, services.ErrOrderLinkConflict):
		return "Link undangan bentrok, silakan proses ulang."
	case errors.Is(err, services.ErrOrderInvalidInput):
		return "Data pesanan tidak valid: " + err.Error()
	default:
		return "Terjadi kesalahan, coba lagi."
	}
}

func parseIDParam(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "ID tidak valid.")
		return 0, false
	}
	return uint(id), true
}

// parseOrderForm membaca OrderInput dari form, termasuk pilihan musik dan
// field tambahan berprefiks extra_ milik template tertentu.
func parseOrderForm(c *fiber.Ctx) (services.OrderInput, error) {
	var input services.OrderInput
	if err := c.BodyParser(&input); err != nil {
		return input, err
	}

	if raw := strings.TrimSpace(c.FormValue("selected_music_id")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return input, fmt.Errorf("pilihan musik tidak valid")
		}
		if id > 0 {
			musicID := uint(id)
			input.SelectedMusicID = &musicID
		}
	}

	input.WeddingGiftsJSON = strings.TrimSpace(c.FormValue("wedding_gifts"))

	extra := map[string]interface{}{}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		if strings.HasPrefix(k, "extra_") {
			extra[strings.TrimPrefix(k, "extra_")] = string(value)
		}
	})
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for key, values := range form.Value {
			if strings.HasPrefix(key, "extra_") && len(values) > 0 {
				extra[strings.TrimPrefix(key, "extra_")] = values[0]
			}
		}
	}
	if len(extra) > 0 {
		input.ExtraFields = extra
	}
	return input, nil
}
