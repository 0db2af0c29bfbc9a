package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"undangan.link/configs/configslog"
	"undangan.link/models"
)

// MigrateOrdersTable tabel orders; dijalankan setelah templates karena
// orders punya foreign key ke templates.
func MigrateOrdersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrasi tabel orders...")
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		configslog.Log.Error("Migrasi tabel orders gagal", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tabel orders selesai dimigrasi")
	return nil
}
