package handlers

import (
	"errors"
	"fmt"
	"net/http"

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

// DashboardMusicHandler halaman pustaka musik di dashboard.
type DashboardMusicHandler struct {
	service services.IMusicService
}

// NewDashboardMusicHandler membuat handler musik dashboard.
func NewDashboardMusicHandler(service services.IMusicService) *DashboardMusicHandler {
	return &DashboardMusicHandler{service: service}
}

// ListMusic daftar musik dengan filter kategori.
func (h *DashboardMusicHandler) ListMusic(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("ListMusic: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.GetMusicPaginated(c.UserContext(), params)

	flash, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title":  "Musik",
		"Result": result,
		"Params": params,
	}
	renderer.SetFlashMessages(data, flash)
	if err != nil {
		data[renderer.FlashErrorKeyView] = "Daftar musik gagal dimuat."
		data["Result"] = &queryparams.PaginatedResult{Data: []models.Music{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("ListMusic: service error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/music/list", "layouts/dashboard_layout", data, http.StatusOK)
}

// CreateMusic menambahkan entri musik dari hasil unggah browser.
func (h *DashboardMusicHandler) CreateMusic(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)

	var input services.MusicInput
	if err := c.BodyParser(&input); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Form tidak valid.")
		return c.Redirect("/dashboard/music", fiber.StatusSeeOther)
	}

	if _, err := h.service.CreateMusic(c.UserContext(), userID, input); err != nil {
		if !errors.Is(err, services.ErrMusicInvalidInput) {
			configslog.Log.Error("CreateMusic: service error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, musicErrMessage(err))
		return c.Redirect("/dashboard/music", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Musik ditambahkan.")
	return c.Redirect("/dashboard/music", fiber.StatusFound)
}

// UpdateMusic menyimpan perubahan entri musik.
func (h *DashboardMusicHandler) UpdateMusic(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)
	musicID, ok := parseIDParam(c)
	if !ok {
		return c.Redirect("/dashboard/music", fiber.StatusSeeOther)
	}

	var input services.MusicInput
	if err := c.BodyParser(&input); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Form tidak valid.")
		return c.Redirect("/dashboard/music", fiber.StatusSeeOther)
	}

	if err := h.service.UpdateMusic(c.UserContext(), musicID, userID, input); err != nil {
		if !errors.Is(err, services.ErrMusicNotFound) && !errors.Is(err, services.ErrMusicInvalidInput) {
			configslog.Log.Error("UpdateMusic: service error", zap.Uint("id", musicID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, musicErrMessage(err))
		return c.Redirect("/dashboard/music", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Musik diperbarui.")
	return c.Redirect("/dashboard/music", fiber.StatusFound)
}

// DeleteMusic menghapus entri musik beserta file audionya di penyedia media.
// Pesanan yang masih merujuk entri ini otomatis jatuh ke tanpa audio saat
// digenerate ulang.
func (h *DashboardMusicHandler) DeleteMusic(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)
	musicID, ok := parseIDParam(c)
	if !ok {
		return c.Redirect("/dashboard/music", fiber.StatusSeeOther)
	}

	assetDeleted, err := h.service.DeleteMusic(c.UserContext(), musicID, userID)
	switch {
	case err != nil:
		if !errors.Is(err, services.ErrMusicNotFound) {
			configslog.Log.Error("DeleteMusic: service error", zap.Uint("id", musicID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, musicErrMessage(err))
	case !assetDeleted:
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey,
			fmt.Sprintf("Musik dihapus dari katalog, tapi file audionya (ID %d) gagal dihapus di penyedia media.", musicID))
	default:
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Musik dihapus.")
	}
	return c.Redirect("/dashboard/music", fiber.StatusSeeOther)
}

func musicErrMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrMusicNotFound):
		return "Musik tidak ditemukan."
	case errors.Is(err, services.ErrMusicInvalidInput):
		return "Data musik tidak valid: " + err.Error()
	default:
		return "Terjadi kesalahan, coba lagi."
	}
}
