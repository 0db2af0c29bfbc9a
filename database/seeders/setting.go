package seeders

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"undangan.link/configs/configslog"
	"undangan.link/models"
)

// SeedSettings membuat baris singleton info pembayaran dan pengaturan situs
// bila belum ada, supaya halaman dashboard tidak mulai dari dokumen kosong
// yang nil.
func SeedSettings(db *gorm.DB) error {
	ctx := models.ContextWithUserID(context.Background(), 1)

	payment := models.PaymentInfo{BaseModel: models.BaseModel{ID: 1}}
	if err := db.WithContext(ctx).FirstOrCreate(&payment, payment).Error; err != nil {
		configslog.Log.Error("Seed payment_infos gagal", zap.Error(err))
		return err
	}

	site := models.SiteSetting{BaseModel: models.BaseModel{ID: 1}}
	if site.Data == nil {
		site.Data = map[string]interface{}{
			"site_name":       "Undangan Digital",
			"whatsapp_number": "",
		}
	}
	if err := db.WithContext(ctx).FirstOrCreate(&site, models.SiteSetting{BaseModel: models.BaseModel{ID: 1}}).Error; err != nil {
		configslog.Log.Error("Seed site_settings gagal", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Baris pengaturan singleton siap.")
	return nil
}
