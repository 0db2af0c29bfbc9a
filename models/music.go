package models

// Kategori musik latar undangan.
const (
	MusicCategoryQuran  = "quran"
	MusicCategoryNasyid = "nasyid"
)

// Music satu entri katalog musik latar. File audionya dihosting Cloudinary;
// PublicID dan ResourceType dipakai sidecar saat menghapus asetnya.
type Music struct {
	BaseModel
	Title        string `gorm:"type:varchar(150);not null"`
	Category     string `gorm:"type:varchar(20);not null;default:'quran';index"`
	FileName     string `gorm:"type:varchar(255)"`
	URL          string `gorm:"type:varchar(500);not null"`
	PublicID     string `gorm:"type:varchar(255)"`
	ResourceType string `gorm:"type:varchar(20);default:'video'"`
}
