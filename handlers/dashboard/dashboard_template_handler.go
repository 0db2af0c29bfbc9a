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

// DashboardTemplateHandler halaman tema di dashboard desainer.
type DashboardTemplateHandler struct {
	service services.ITemplateService
}

// NewDashboardTemplateHandler membuat handler tema dashboard.
func NewDashboardTemplateHandler(service services.ITemplateService) *DashboardTemplateHandler {
	return &DashboardTemplateHandler{service: service}
}

// ListTemplates daftar tema dengan filter status dan pencarian nama.
func (h *DashboardTemplateHandler) ListTemplates(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("ListTemplates: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.GetTemplatesPaginated(c.UserContext(), params)

	flash, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title":  "Tema",
		"Result": result,
		"Params": params,
	}
	renderer.SetFlashMessages(data, flash)
	if err != nil {
		data[renderer.FlashErrorKeyView] = "Daftar tema gagal dimuat."
		data["Result"] = &queryparams.PaginatedResult{Data: []models.Template{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("ListTemplates: service error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/templates/list", "layouts/dashboard_layout", data, http.StatusOK)
}

// ShowCreateTemplate form tema baru.
func (h *DashboardTemplateHandler) ShowCreateTemplate(c *fiber.Ctx) error {
	flash, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title":    "Tema Baru",
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(data, flash)
	return renderer.Render(c, "dashboard/templates/create", "layouts/dashboard_layout", data)
}

// CreateTemplate membuat draft tema baru.
func (h *DashboardTemplateHandler) CreateTemplate(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)

	var input services.TemplateInput
	if err := c.BodyParser(&input); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Form tidak valid.")
		return c.Redirect("/dashboard/templates/create", fiber.StatusSeeOther)
	}

	template, err := h.service.CreateTemplate(c.UserContext(), userID, input)
	if err != nil {
		if !errors.Is(err, services.ErrTemplateInvalidInput) {
			configslog.Log.Error("CreateTemplate: service error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, templateErrMessage(err))
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect("/dashboard/templates/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Tema dibuat. Lanjutkan di editor.")
	return c.Redirect(fmt.Sprintf("/dashboard/templates/builder/%d", template.ID), fiber.StatusFound)
}

// ShowEditTemplate form metadata tema.
func (h *DashboardTemplateHandler) ShowEditTemplate(c *fiber.Ctx) error {
	templateID, ok := parseIDParam(c)
	if !ok {
		return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
	}

	template, err := h.service.GetTemplateByID(c.UserContext(), templateID)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, templateErrMessage(err))
		return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
	}

	flash, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title":    "Edit Tema",
		"Template": template,
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(data, flash)
	return renderer.Render(c, "dashboard/templates/edit", "layouts/dashboard_layout", data)
}

// UpdateTemplate menyimpan metadata tema.
func (h *DashboardTemplateHandler) UpdateTemplate(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)
	templateID, ok := parseIDParam(c)
	if !ok {
		return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
	}
	redirectOnError := fmt.Sprintf("/dashboard/templates/edit/%d", templateID)

	var input services.TemplateInput
	if err := c.BodyParser(&input); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Form tidak valid.")
		return c.Redirect(redirectOnError, fiber.StatusSeeOther)
	}

	if err := h.service.UpdateTemplate(c.UserContext(), templateID, userID, input); err != nil {
		if !errors.Is(err, services.ErrTemplateNotFound) && !errors.Is(err, services.ErrTemplateInvalidInput) {
			configslog.Log.Error("UpdateTemplate: service error", zap.Uint("id", templateID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, templateErrMessage(err))
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect(redirectOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Tema diperbarui.")
	return c.Redirect("/dashboard/templates", fiber.StatusFound)
}

// ShowBuilder editor kode tema (HTML/CSS/JS).
func (h *DashboardTemplateHandler) ShowBuilder(c *fiber.Ctx) error {
	templateID, ok := parseIDParam(c)
	if !ok {
		return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
	}

	template, err := h.service.GetTemplateByID(c.UserContext(), templateID)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, templateErrMessage(err))
		return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
	}

	flash, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title":    "Editor Tema: " + template.Name,
		"Template": template,
	}
	renderer.SetFlashMessages(data, flash)
	return renderer.Render(c, "dashboard/templates/builder", "layouts/builder_layout", data)
}

// SaveBuilder menyimpan isi editor; dipanggil lewat fetch, membalas JSON.
func (h *DashboardTemplateHandler) SaveBuilder(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)
	templateID, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "ID tidak valid"})
	}

	var input services.BuilderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "payload tidak valid"})
	}

	if err := h.service.SaveBuilder(c.UserContext(), templateID, userID, input); err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "tema tidak ditemukan"})
		}
		configslog.Log.Error("SaveBuilder: service error", zap.Uint("id", templateID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "gagal menyimpan"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// PreviewTemplate dokumen contoh hasil rakitan tema dengan data fiktif.
func (h *DashboardTemplateHandler) PreviewTemplate(c *fiber.Ctx) error {
	templateID, ok := parseIDParam(c)
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	doc, err := h.service.PreviewDocument(c.UserContext(), templateID)
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		configslog.Log.Error("PreviewTemplate: service error", zap.Uint("id", templateID), zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(doc)
}

// SetTemplateStatus publish atau kembalikan tema ke draft.
func (h *DashboardTemplateHandler) SetTemplateStatus(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)
	templateID, ok := parseIDParam(c)
	if !ok {
		return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
	}

	status := c.FormValue("status")
	if err := h.service.SetStatus(c.UserContext(), templateID, userID, status); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, templateErrMessage(err))
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Status tema diperbarui.")
	}
	return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
}

// DuplicateTemplate menyalin tema jadi draft baru.
func (h *DashboardTemplateHandler) DuplicateTemplate(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)
	templateID, ok := parseIDParam(c)
	if !ok {
		return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
	}

	clone, err := h.service.DuplicateTemplate(c.UserContext(), templateID, userID)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, templateErrMessage(err))
		return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Tema disalin sebagai draft baru.")
	return c.Redirect(fmt.Sprintf("/dashboard/templates/builder/%d", clone.ID), fiber.StatusFound)
}

// DeleteTemplate menghapus tema; dibatasi ke admin lewat middleware.
func (h *DashboardTemplateHandler) DeleteTemplate(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)
	templateID, ok := parseIDParam(c)
	if !ok {
		return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
	}

	mediaDeleted, err := h.service.DeleteTemplate(c.UserContext(), templateID, userID)
	switch {
	case err != nil:
		if !errors.Is(err, services.ErrTemplateNotFound) && !errors.Is(err, services.ErrTemplateInUse) {
			configslog.Log.Error("DeleteTemplate: service error", zap.Uint("id", templateID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, templateErrMessage(err))
	case !mediaDeleted:
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey,
			"Tema dihapus, tapi thumbnail gagal dihapus di penyedia media.")
	default:
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Tema dihapus.")
	}
	return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
}

func templateErrMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrTemplateNotFound):
		return "Tema tidak ditemukan."
	case errors.Is(err, services.ErrTemplateInUse):
		return "Tema masih dipakai pesanan dan tidak bisa dihapus."
	case errors.Is(err, services.ErrTemplateInvalidInput):
		return "Data tema tidak valid: " + err.Error()
	default:
		return "Terjadi kesalahan, coba lagi."
	}
}
