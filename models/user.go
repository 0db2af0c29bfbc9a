package models

// Peran pengguna dashboard.
const (
	RoleAdmin    = "admin"
	RoleCS       = "cs"
	RoleDesigner = "designer"
)

// User akun dashboard (admin, customer service, desainer template).
// Kredensial disimpan sebagai hash bcrypt, bukan teks polos.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(20);not null;default:'cs';index"`
	WhatsApp     string `gorm:"type:varchar(30)"`
	IsActive     bool   `gorm:"default:true;index"`
}

// IsAdmin hanya admin penuh; cs tidak boleh menghapus data.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
