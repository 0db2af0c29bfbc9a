package models

import "gorm.io/datatypes"

// PaymentInfo dokumen tunggal berisi rekening bank dan e-wallet yang
// ditampilkan di langkah pembayaran wizard pesanan. Sistem hanya menampilkan
// nomor rekening statis plus tombol lanjut ke WhatsApp; tidak ada pemrosesan
// pembayaran.
type PaymentInfo struct {
	BaseModel
	Banks    datatypes.JSON `gorm:"type:jsonb"`
	Ewallets datatypes.JSON `gorm:"type:jsonb"`
}
