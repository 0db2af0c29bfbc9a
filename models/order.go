package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status pesanan. ProcessedAt/InvitationLink hanya terisi setelah diproses.
// Status processing dipakai filter dashboard; mesin generate sendiri
// bertransisi pending -> completed dalam satu langkah.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
)

// Order satu pesanan undangan: data kedua mempelai, acara akad dan resepsi,
// pilihan musik, dan daftar amplop digital. InvitationLink sekali terisi
// tidak pernah berubah pada edit berikutnya; hanya InvitationHTML yang
// digenerate ulang.
type Order struct {
	BaseModel
	PublicID   string   `gorm:"type:varchar(36);uniqueIndex;not null"`
	TemplateID uint     `gorm:"index;not null"`
	Template   Template `gorm:"foreignKey:TemplateID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	GroomName     string `gorm:"type:varchar(150);not null"`
	GroomNickname string `gorm:"type:varchar(50);not null"`
	BrideName     string `gorm:"type:varchar(150);not null"`
	BrideNickname string `gorm:"type:varchar(50);not null"`

	GroomFatherName string `gorm:"type:varchar(150)"`
	GroomMotherName string `gorm:"type:varchar(150)"`
	BrideFatherName string `gorm:"type:varchar(150)"`
	BrideMotherName string `gorm:"type:varchar(150)"`

	AkadDate     string `gorm:"type:varchar(20)"`
	AkadTime     string `gorm:"type:varchar(10)"`
	AkadTimezone string `gorm:"type:varchar(10);default:'WIB'"`
	AkadVenue    string `gorm:"type:varchar(255)"`
	AkadMapLink  string `gorm:"type:varchar(500)"`

	ReceptionDate     string `gorm:"type:varchar(20)"`
	ReceptionTime     string `gorm:"type:varchar(10)"`
	ReceptionTimezone string `gorm:"type:varchar(10);default:'WIB'"`
	ReceptionVenue    string `gorm:"type:varchar(255)"`
	ReceptionMapLink  string `gorm:"type:varchar(500)"`

	// Rujukan lunak ke music.id; boleh dangling setelah musik dihapus,
	// generate jatuh ke tanpa audio.
	SelectedMusicID *uint `gorm:"index"`

	WeddingGifts datatypes.JSON `gorm:"type:jsonb"`
	// Field tambahan bebas milik template tertentu; peta eksplisit, bukan
	// refleksi objek terbuka.
	ExtraFields datatypes.JSONMap `gorm:"type:jsonb"`

	Status         string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ProcessedAt    *time.Time `gorm:"type:timestamptz"`
	InvitationLink *string    `gorm:"type:varchar(500);uniqueIndex"`
	InvitationHTML string     `gorm:"column:invitation_html;type:text"`
}

// BeforeCreate memberi PublicID baru bila belum ada, lalu meneruskan ke hook
// audit BaseModel.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.PublicID == "" {
		o.PublicID = uuid.NewString()
	}
	return o.BaseModel.BeforeCreate(tx)
}

// PlaceholderFields meratakan pesanan menjadi peta kunci->nilai untuk mesin
// substitusi. Kunci terreservasi (weddingGifts, musicUrl) tidak pernah masuk;
// nilai ExtraFields non-skalar dilewati agar tidak bocor jadi teks mentah.
func (o *Order) PlaceholderFields() map[string]string {
	fields := map[string]string{
		"groomName":         o.GroomName,
		"groomNickname":     o.GroomNickname,
		"brideName":         o.BrideName,
		"brideNickname":     o.BrideNickname,
		"groomFatherName":   o.GroomFatherName,
		"groomMotherName":   o.GroomMotherName,
		"brideFatherName":   o.BrideFatherName,
		"brideMotherName":   o.BrideMotherName,
		"akadDate":          o.AkadDate,
		"akadTime":          o.AkadTime,
		"akadTimezone":      o.AkadTimezone,
		"akadVenue":         o.AkadVenue,
		"akadMapLink":       o.AkadMapLink,
		"receptionDate":     o.ReceptionDate,
		"receptionTime":     o.ReceptionTime,
		"receptionTimezone": o.ReceptionTimezone,
		"receptionVenue":    o.ReceptionVenue,
		"receptionMapLink":  o.ReceptionMapLink,
	}
	for key, value := range o.ExtraFields {
		if key == "weddingGifts" || key == "musicUrl" {
			continue
		}
		switch v := value.(type) {
		case string:
			fields[key] = v
		case float64:
			fields[key] = trimFloat(v)
		case bool:
			if v {
				fields[key] = "true"
			} else {
				fields[key] = "false"
			}
		case nil:
			fields[key] = ""
		default:
			// Objek/array dilewati, token dibiarkan tak terganti.
		}
	}
	return fields
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
