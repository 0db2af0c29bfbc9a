package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"undangan.link/configs/configslog"
	"undangan.link/models"
)

func MigrateMusicTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrasi tabel musics...")
	if err := db.AutoMigrate(&models.Music{}); err != nil {
		configslog.Log.Error("Migrasi tabel musics gagal", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tabel musics selesai dimigrasi")
	return nil
}
