package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"undangan.link/configs/configslog"
	"undangan.link/middlewares"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/services"
)

// DashboardSettingHandler halaman info pembayaran dan pengaturan situs.
type DashboardSettingHandler struct {
	service services.ISettingService
}

// NewDashboardSettingHandler membuat handler pengaturan dashboard.
func NewDashboardSettingHandler() *DashboardSettingHandler {
	return &DashboardSettingHandler{service: services.NewSettingService()}
}

// ShowPaymentInfo form rekening bank dan e-wallet.
func (h *DashboardSettingHandler) ShowPaymentInfo(c *fiber.Ctx) error {
	banks, ewallets, err := h.service.GetPaymentInfo(c.UserContext())
	if err != nil {
		configslog.Log.Error("ShowPaymentInfo: service error", zap.Error(err))
	}

	flash, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title":    "Info Pembayaran",
		"Banks":    banks,
		"Ewallets": ewallets,
	}
	renderer.SetFlashMessages(data, flash)
	return renderer.Render(c, "dashboard/settings/payment", "layouts/dashboard_layout", data)
}

// SavePaymentInfo menyimpan daftar rekening. Form mengirim dua array JSON,
// disusun oleh JS halaman dari baris input dinamis.
func (h *DashboardSettingHandler) SavePaymentInfo(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)

	banks, err := decodeAccountsForm(c.FormValue("banks"))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Daftar bank tidak valid.")
		return c.Redirect("/dashboard/settings/payment", fiber.StatusSeeOther)
	}
	ewallets, err := decodeAccountsForm(c.FormValue("ewallets"))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Daftar e-wallet tidak valid.")
		return c.Redirect("/dashboard/settings/payment", fiber.StatusSeeOther)
	}

	if err := h.service.SavePaymentInfo(c.UserContext(), userID, banks, ewallets); err != nil {
		if !errors.Is(err, services.ErrSettingInvalidInput) {
			configslog.Log.Error("SavePaymentInfo: service error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Info pembayaran gagal disimpan: "+err.Error())
		return c.Redirect("/dashboard/settings/payment", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Info pembayaran disimpan.")
	return c.Redirect("/dashboard/settings/payment", fiber.StatusFound)
}

// ShowSiteSettings form pengaturan situs.
func (h *DashboardSettingHandler) ShowSiteSettings(c *fiber.Ctx) error {
	settings, err := h.service.GetSiteSettings(c.UserContext())
	if err != nil {
		configslog.Log.Error("ShowSiteSettings: service error", zap.Error(err))
	}

	flash, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title":    "Pengaturan Situs",
		"Settings": settings,
	}
	renderer.SetFlashMessages(data, flash)
	return renderer.Render(c, "dashboard/settings/site", "layouts/dashboard_layout", data)
}

// SaveSiteSettings me-merge field form ke dokumen pengaturan.
func (h *DashboardSettingHandler) SaveSiteSettings(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)

	data := map[string]interface{}{}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		data[string(key)] = string(value)
	})

	if err := h.service.SaveSiteSettings(c.UserContext(), userID, data); err != nil {
		configslog.Log.Error("SaveSiteSettings: service error", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Pengaturan gagal disimpan.")
		return c.Redirect("/dashboard/settings/site", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Pengaturan disimpan.")
	return c.Redirect("/dashboard/settings/site", fiber.StatusFound)
}

func decodeAccountsForm(raw string) ([]services.PaymentAccount, error) {
	if raw == "" {
		return nil, nil
	}
	var accounts []services.PaymentAccount
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
