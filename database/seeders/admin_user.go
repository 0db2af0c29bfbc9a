package seeders

import (
	"context"
	"errors"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"undangan.link/configs/configslog"
	"undangan.link/models"
)

// SeedAdminUser memastikan ada satu akun admin. Kredensial awal dibaca dari
// ADMIN_EMAIL dan ADMIN_PASSWORD; tanpa keduanya seeder hanya memberi
// peringatan saat belum ada admin sama sekali.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		configslog.Log.Error("Pemeriksaan akun admin gagal", zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Info("Akun admin sudah ada, seeder dilewati.")
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		configslog.SLog.Warn("Belum ada akun admin dan ADMIN_EMAIL/ADMIN_PASSWORD tidak diset.")
		return nil
	}
	if len(password) < 8 {
		return errors.New("ADMIN_PASSWORD minimal 8 karakter")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}

	ctx := models.ContextWithUserID(context.Background(), 1)
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		configslog.Log.Error("Akun admin gagal dibuat", zap.String("email", email), zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Akun admin dibuat: %s (ID %d)", admin.Email, admin.ID)
	return nil
}
