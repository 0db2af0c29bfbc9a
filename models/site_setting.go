package models

import "gorm.io/datatypes"

// SiteSetting dokumen tunggal pengaturan situs (nama situs, nomor WhatsApp,
// teks hero, dst). Disimpan sebagai peta dan di-merge saat update, meniru
// perilaku dokumen konfigurasi aslinya.
type SiteSetting struct {
	BaseModel
	Data datatypes.JSONMap `gorm:"type:jsonb"`
}
