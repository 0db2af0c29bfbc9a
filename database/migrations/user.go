package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"undangan.link/configs/configslog"
	"undangan.link/models"
)

func MigrateUsersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrasi tabel users...")
	if err := db.AutoMigrate(&models.User{}); err != nil {
		configslog.Log.Error("Migrasi tabel users gagal", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tabel users selesai dimigrasi")
	return nil
}
