package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"undangan.link/configs/configslog"
	"undangan.link/models"
)

func MigrateTemplatesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrasi tabel templates...")
	if err := db.AutoMigrate(&models.Template{}); err != nil {
		configslog.Log.Error("Migrasi tabel templates gagal", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tabel templates selesai dimigrasi")
	return nil
}
