package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"undangan.link/configs/configslog"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/services"
)

// PublicHandler halaman publik: katalog tema, wizard pesanan, dan penyajian
// undangan jadi.
type PublicHandler struct {
	orderService    services.IOrderService
	templateService services.ITemplateService
	musicService    services.IMusicService
	settingService  services.ISettingService
}

// NewPublicHandler membuat handler halaman publik.
func NewPublicHandler(templateService services.ITemplateService, musicService services.IMusicService) *PublicHandler {
	return &PublicHandler{
		orderService:    services.NewOrderService(),
		templateService: templateService,
		musicService:    musicService,
		settingService:  services.NewSettingService(),
	}
}

// Home katalog tema yang sudah dipublikasikan.
func (h *PublicHandler) Home(c *fiber.Ctx) error {
	templates, err := h.templateService.GetPublishedTemplates(c.UserContext())
	if err != nil {
		configslog.Log.Error("Home: gagal memuat katalog", zap.Error(err))
	}
	settings, err := h.settingService.GetSiteSettings(c.UserContext())
	if err != nil {
		configslog.Log.Error("Home: gagal memuat pengaturan situs", zap.Error(err))
	}

	return renderer.Render(c, "public/home", "layouts/public_layout", fiber.Map{
		"Title":     "Katalog Undangan",
		"Templates": templates,
		"Settings":  settings,
	})
}

// PreviewTemplate pratinjau tema untuk calon pemesan, memakai data contoh.
func (h *PublicHandler) PreviewTemplate(c *fiber.Ctx) error {
	templateID, err := c.ParamsInt("id")
	if err != nil || templateID <= 0 {
		return c.SendStatus(fiber.StatusNotFound)
	}

	doc, err := h.templateService.PreviewDocument(c.UserContext(), uint(templateID))
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		configslog.Log.Error("PreviewTemplate (publik): service error", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(doc)
}

// ShowOrderForm wizard pemesanan untuk satu tema.
func (h *PublicHandler) ShowOrderForm(c *fiber.Ctx) error {
	templateID, err := c.ParamsInt("id")
	if err != nil || templateID <= 0 {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	template, err := h.templateService.GetTemplateByID(c.UserContext(), uint(templateID))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Tema tidak ditemukan.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	musics, err := h.musicService.GetAllMusic(c.UserContext())
	if err != nil {
		configslog.Log.Error("ShowOrderForm: gagal memuat musik", zap.Error(err))
	}

	flash, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title":    "Pesan Undangan: " + template.Name,
		"Template": template,
		"Musics":   musics,
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(data, flash)
	return renderer.Render(c, "public/order", "layouts/public_layout", data)
}

// SubmitOrder menerima kiriman wizard dan membuat pesanan pending, lalu
// mengarahkan ke halaman instruksi pembayaran.
func (h *PublicHandler) SubmitOrder(c *fiber.Ctx) error {
	input, err := parsePublicOrderForm(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Form tidak valid: "+err.Error())
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	order, err := h.orderService.CreateOrder(c.UserContext(), input)
	if err != nil {
		if !errors.Is(err, services.ErrOrderInvalidInput) && !errors.Is(err, services.ErrOrderTemplateGone) {
			configslog.Log.Error("SubmitOrder: service error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Pesanan gagal dibuat: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect(orderFormPath(input.TemplateID), fiber.StatusSeeOther)
	}

	return c.Redirect("/order/success/"+order.PublicID, fiber.StatusFound)
}

// ShowOrderSuccess instruksi pembayaran setelah wizard selesai: rekening
// tujuan dan tombol konfirmasi ke WhatsApp.
func (h *PublicHandler) ShowOrderSuccess(c *fiber.Ctx) error {
	publicID := c.Params("public_id")
	if publicID == "" {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	banks, ewallets, err := h.settingService.GetPaymentInfo(c.UserContext())
	if err != nil {
		configslog.Log.Error("ShowOrderSuccess: gagal memuat info pembayaran", zap.Error(err))
	}
	settings, err := h.settingService.GetSiteSettings(c.UserContext())
	if err != nil {
		configslog.Log.Error("ShowOrderSuccess: gagal memuat pengaturan situs", zap.Error(err))
	}

	return renderer.Render(c, "public/order_success", "layouts/public_layout", fiber.Map{
		"Title":    "Pesanan Diterima",
		"PublicID": publicID,
		"Banks":    banks,
		"Ewallets": ewallets,
		"Settings": settings,
	})
}

// ShowInvitation menyajikan dokumen undangan tersimpan apa adanya.
// Dokumen sudah berdiri sendiri (CSS, JS, audio tertanam), jadi respons
// cukup text/html tanpa layout.
func (h *PublicHandler) ShowInvitation(c *fiber.Ctx) error {
	slug := c.Params("slug")

	html, err := h.orderService.GetInvitationHTMLBySlug(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, services.ErrInvitationNotFound) {
			return renderer.Render(c, "public/invitation_not_found", "layouts/public_layout", fiber.Map{
				"Title": "Undangan Tidak Ditemukan",
			}, fiber.StatusNotFound)
		}
		configslog.Log.Error("ShowInvitation: service error", zap.String("slug", slug), zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}
