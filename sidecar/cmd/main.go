// Sidecar penghapus media: proses kecil terpisah yang memegang kredensial
// Cloudinary. Aplikasi utama tidak pernah menyentuh API key; ia hanya
// memanggil POST /delete-music di sini.
package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"undangan.link/configs/configsapp"
	"undangan.link/configs/configslog"
	"undangan.link/pkg/mediastore"
)

// newApp menyusun aplikasi sidecar. Body error memakai kunci "error";
// hanya respons sukses yang membawa success/result.
func newApp(client *mediastore.CloudinaryClient) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "undangan.link media sidecar"})
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	app.Post("/delete-music", func(c *fiber.Ctx) error {
		var req mediastore.DeleteRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "payload tidak valid",
			})
		}
		req.PublicID = strings.TrimSpace(req.PublicID)
		if req.PublicID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "public_id wajib diisi",
			})
		}
		if req.ResourceType == "" {
			req.ResourceType = "auto"
		}

		result, err := client.Destroy(req.PublicID, req.ResourceType)
		if err != nil {
			configslog.Log.Error("Destroy gagal",
				zap.String("public_id", req.PublicID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "penghapusan aset gagal",
			})
		}

		configslog.SLog.Infof("Aset %s: %s", req.PublicID, result.Result)
		return c.JSON(fiber.Map{
			"success": true,
			"result":  result.Result,
		})
	})

	return app
}

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configsapp.LoadConfig()
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		configslog.Log.Fatal("Kredensial Cloudinary belum diset (CLOUDINARY_*)")
	}

	client := mediastore.NewCloudinaryClient(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	app := newApp(client)

	addr := os.Getenv("SIDECAR_LISTEN_ADDR")
	if addr == "" {
		addr = ":4000"
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		_ = app.Shutdown()
	}()

	configslog.SLog.Infof("Sidecar media berjalan di %s", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sidecar berhenti dengan error", zap.Error(err))
	}
}
