package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"undangan.link/configs/configslog"
	"undangan.link/configs/configssession"
	"undangan.link/middlewares"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/services"
)

// AuthHandler login dan logout dashboard.
type AuthHandler struct {
	service services.IUserService
}

// NewAuthHandler membuat AuthHandler baru.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{service: services.NewUserService()}
}

// ShowLogin menampilkan form login.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	flash, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{"Title": "Masuk"}
	renderer.SetFlashMessages(data, flash)
	return renderer.Render(c, "auth/login", "layouts/auth_layout", data)
}

// Login memverifikasi kredensial dan membuka sesi.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if email == "" || password == "" {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Email dan password wajib diisi.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	user, err := h.service.Authenticate(c.UserContext(), email, password)
	if err != nil {
		msg := "Email atau password salah."
		if errors.Is(err, services.ErrUserInactive) {
			msg = "Akun Anda dinonaktifkan. Hubungi admin."
		} else if !errors.Is(err, services.ErrInvalidCredentials) {
			configslog.Log.Error("Login: service error", zap.String("email", email), zap.Error(err))
			msg = "Terjadi kesalahan, coba lagi."
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, err := configssession.GetStore().Get(c)
	if err != nil {
		configslog.Log.Error("Login: session error", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	// Identitas lama dibuang, cegah session fixation.
	if err := sess.Regenerate(); err != nil {
		configslog.Log.Error("Login: session regenerate error", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	sess.Set(middlewares.SessionUserIDKey, user.ID)
	sess.Set(middlewares.SessionUserNameKey, user.Name)
	sess.Set(middlewares.SessionUserRoleKey, user.Role)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Login: session save error", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	configslog.SLog.Infof("Login berhasil: %s (user %d)", user.Email, user.ID)
	return c.Redirect("/dashboard", fiber.StatusFound)
}

// Logout menutup sesi dan kembali ke form login.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := configssession.GetStore().Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.Redirect("/auth/login", fiber.StatusSeeOther)
}
