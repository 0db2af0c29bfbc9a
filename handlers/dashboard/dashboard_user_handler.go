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

// DashboardUserHandler manajemen akun internal; seluruh rutenya khusus admin.
type DashboardUserHandler struct {
	service services.IUserService
}

// NewDashboardUserHandler membuat handler akun dashboard.
func NewDashboardUserHandler() *DashboardUserHandler {
	return &DashboardUserHandler{service: services.NewUserService()}
}

// ListUsers daftar akun internal.
func (h *DashboardUserHandler) ListUsers(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("ListUsers: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.GetUsersPaginated(c.UserContext(), params)

	flash, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title":  "Akun",
		"Result": result,
		"Params": params,
	}
	renderer.SetFlashMessages(data, flash)
	if err != nil {
		data[renderer.FlashErrorKeyView] = "Daftar akun gagal dimuat."
		data["Result"] = &queryparams.PaginatedResult{Data: []models.User{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("ListUsers: service error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/users/list", "layouts/dashboard_layout", data, http.StatusOK)
}

// ShowCreateUser form akun baru.
func (h *DashboardUserHandler) ShowCreateUser(c *fiber.Ctx) error {
	flash, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title":    "Akun Baru",
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(data, flash)
	return renderer.Render(c, "dashboard/users/create", "layouts/dashboard_layout", data)
}

// CreateUser membuat akun internal baru.
func (h *DashboardUserHandler) CreateUser(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)

	input, err := parseUserForm(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Form tidak valid.")
		return c.Redirect("/dashboard/users/create", fiber.StatusSeeOther)
	}

	if _, err := h.service.CreateUser(c.UserContext(), userID, input); err != nil {
		if !errors.Is(err, services.ErrUserInvalidInput) && !errors.Is(err, services.ErrUserEmailTaken) {
			configslog.Log.Error("CreateUser: service error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, userErrMessage(err))
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect("/dashboard/users/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Akun dibuat.")
	return c.Redirect("/dashboard/users", fiber.StatusFound)
}

// ShowEditUser form edit akun.
func (h *DashboardUserHandler) ShowEditUser(c *fiber.Ctx) error {
	targetID, ok := parseIDParam(c)
	if !ok {
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}

	user, err := h.service.GetUserByID(c.UserContext(), targetID)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, userErrMessage(err))
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}

	flash, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title":    "Edit Akun",
		"User":     user,
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(data, flash)
	return renderer.Render(c, "dashboard/users/edit", "layouts/dashboard_layout", data)
}

// UpdateUser menyimpan perubahan akun; password kosong berarti tidak diganti.
func (h *DashboardUserHandler) UpdateUser(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)
	targetID, ok := parseIDParam(c)
	if !ok {
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}
	redirectOnError := fmt.Sprintf("/dashboard/users/edit/%d", targetID)

	input, err := parseUserForm(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Form tidak valid.")
		return c.Redirect(redirectOnError, fiber.StatusSeeOther)
	}

	if err := h.service.UpdateUser(c.UserContext(), targetID, userID, input); err != nil {
		if !errors.Is(err, services.ErrUserNotFound) && !errors.Is(err, services.ErrUserInvalidInput) &&
			!errors.Is(err, services.ErrUserEmailTaken) {
			configslog.Log.Error("UpdateUser: service error", zap.Uint("id", targetID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, userErrMessage(err))
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect(redirectOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Akun diperbarui.")
	return c.Redirect("/dashboard/users", fiber.StatusFound)
}

// DeleteUser menghapus akun; akun sendiri tidak bisa dihapus.
func (h *DashboardUserHandler) DeleteUser(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)
	targetID, ok := parseIDParam(c)
	if !ok {
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteUser(c.UserContext(), targetID, userID); err != nil {
		if !errors.Is(err, services.ErrUserNotFound) && !errors.Is(err, services.ErrUserSelfDeleteBlocked) {
			configslog.Log.Error("DeleteUser: service error", zap.Uint("id", targetID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, userErrMessage(err))
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Akun dihapus.")
	}
	return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
}

func parseUserForm(c *fiber.Ctx) (services.UserInput, error) {
	var input services.UserInput
	if err := c.BodyParser(&input); err != nil {
		return input, err
	}
	active := c.FormValue("is_active", "false")
	input.IsActive = active == "true" || active == "on"
	return input, nil
}

func userErrMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return "Akun tidak ditemukan."
	case errors.Is(err, services.ErrUserEmailTaken):
		return "Email sudah dipakai akun lain."
	case errors.Is(err, services.ErrUserSelfDeleteBlocked):
		return "Anda tidak bisa menghapus akun sendiri."
	case errors.Is(err, services.ErrUserInvalidInput):
		return "Data akun tidak valid: " + err.Error()
	default:
		return "Terjadi kesalahan, coba lagi."
	}
}
