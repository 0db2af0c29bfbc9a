package configsapp

import (
	"os"

	"github.com/joho/godotenv"

	"undangan.link/configs/configslog"
)

// Config konfigurasi aplikasi yang dibaca dari environment (.env).
type Config struct {
	AppEnv     string
	ListenAddr string
	// BaseURL origin publik, dipakai saat menyusun invitationLink.
	BaseURL string

	SessionSecret string

	// Sidecar penghapus media (Cloudinary).
	MediaSidecarURL string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

var config *Config

// LoadConfig membaca .env (jika ada) lalu membangun Config dari environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info("File .env tidak ditemukan, memakai environment proses.")
	}

	config = &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		ListenAddr:          getEnv("LISTEN_ADDR", ":3000"),
		BaseURL:             getEnv("BASE_URL", "http://localhost:3000"),
		SessionSecret:       getEnv("SESSION_SECRET", ""),
		MediaSidecarURL:     getEnv("MEDIA_SIDECAR_URL", "http://localhost:4000"),
		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}
	return config
}

// GetConfig mengembalikan config yang sudah dimuat (LoadConfig dipanggil dulu di main).
func GetConfig() *Config {
	if config == nil {
		return LoadConfig()
	}
	return config
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
