package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"undangan.link/configs/configslog"
	"undangan.link/models"
)

func MigrateSettingTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrasi tabel payment_infos & site_settings...")
	if err := db.AutoMigrate(&models.PaymentInfo{}, &models.SiteSetting{}); err != nil {
		configslog.Log.Error("Migrasi tabel pengaturan gagal", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tabel pengaturan selesai dimigrasi")
	return nil
}
