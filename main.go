package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"undangan.link/configs/configsapp"
	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/configs/configssession"
	"undangan.link/routes"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configsapp.LoadConfig()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	configssession.SetupSession()

	engine := html.New("./views", ".html")
	if cfg.AppEnv != "production" {
		engine.Reload(true)
	}

	app := fiber.New(fiber.Config{
		Views:       engine,
		AppName:     "undangan.link",
		ProxyHeader: fiber.HeaderXForwardedFor,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Static("/assets", "./public")

	routes.SetupRoutes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Sinyal berhenti diterima, server dimatikan...")
		_ = app.Shutdown()
	}()

	configslog.SLog.Infof("Server berjalan di %s", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		configslog.Log.Fatal("Server berhenti dengan error", zap.Error(err))
	}
}
