package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log logger terstruktur utama aplikasi.
// SLog versi sugared untuk pesan cepat (printf-style).
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger menyiapkan logger global sesuai APP_ENV.
// production: JSON ke stdout, level Info. Selain itu: console berwarna, level Debug.
func InitLogger() {
	env := os.Getenv("APP_ENV")

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logger gagal dibuat berarti aplikasi tidak bisa observasi apa pun.
		panic("gagal menginisialisasi logger: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger mem-flush buffer logger. Panggil lewat defer di main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
