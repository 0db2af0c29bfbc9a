package models

// Status publikasi template.
const (
	TemplateStatusDraft   = "draft"
	TemplateStatusPublish = "publish"
)

// Template kerangka undangan karya desainer: HTML dengan token {{namaField}}
// (plus penanda opsional id="wedding-gift-section"), CSS, dan JS mentah.
// Tidak pernah terikat fisik ke pesanan; dirujuk lewat id.
type Template struct {
	BaseModel
	Name        string `gorm:"type:varchar(150);not null;index"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"type:varchar(50);index"`
	Price       int64  `gorm:"not null;default:0"`
	// Diskon persen 0-100.
	Discount          int    `gorm:"not null;default:0"`
	HTML              string `gorm:"column:html;type:text"`
	CSS               string `gorm:"column:css;type:text"`
	JS                string `gorm:"column:js;type:text"`
	ThumbnailURL      string `gorm:"type:varchar(500)"`
	ThumbnailPublicID string `gorm:"type:varchar(255)"`
	Status            string `gorm:"type:varchar(20);not null;default:'draft';index"`
}

// FinalPrice harga setelah diskon; diskon di luar rentang valid diabaikan.
func (t *Template) FinalPrice() int64 {
	if t.Discount > 0 && t.Discount < 100 {
		return t.Price * int64(100-t.Discount) / 100
	}
	return t.Price
}
