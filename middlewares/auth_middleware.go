package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"undangan.link/configs/configssession"
	"undangan.link/models"
	"undangan.link/pkg/flashmessages"
)

// Kunci data login di session dan di Locals.
const (
	SessionUserIDKey   = "user_id"
	SessionUserNameKey = "user_name"
	SessionUserRoleKey = "user_role"

	LocalUserIDKey   = "userID"
	LocalUserNameKey = "userName"
	LocalUserRoleKey = "userRole"
)

// AuthRequired menolak request tanpa sesi login dan menaruh identitas user
// di Locals untuk handler berikutnya.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := configssession.GetStore().Get(c)
		if err != nil {
			return c.Redirect("/auth/login", fiber.StatusSeeOther)
		}

		userID, ok := sess.Get(SessionUserIDKey).(uint)
		if !ok || userID == 0 {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Silakan login terlebih dahulu.")
			return c.Redirect("/auth/login", fiber.StatusSeeOther)
		}

		c.Locals(LocalUserIDKey, userID)
		if name, ok := sess.Get(SessionUserNameKey).(string); ok {
			c.Locals(LocalUserNameKey, name)
		}
		if role, ok := sess.Get(SessionUserRoleKey).(string); ok {
			c.Locals(LocalUserRoleKey, role)
		}
		return c.Next()
	}
}

// RequireRoles membatasi rute ke peran tertentu. Dipasang setelah AuthRequired.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalUserRoleKey).(string)
		if !allowed[role] {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Anda tidak punya akses ke halaman itu.")
			return c.Redirect("/dashboard", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequireAdmin pembatas khusus admin penuh.
func RequireAdmin() fiber.Handler {
	return RequireRoles(models.RoleAdmin)
}

// CurrentUserID identitas user login dari Locals; 0 bila tidak ada.
func CurrentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals(LocalUserIDKey).(uint); ok {
		return id
	}
	return 0
}

// CurrentUserRole peran user login dari Locals.
func CurrentUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalUserRoleKey).(string)
	return role
}
