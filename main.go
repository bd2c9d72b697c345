package main

import (
	"os"
	"os/signal"
	"syscall"

	"quickly.link/configs/configsdatabase"
	"quickly.link/configs/configslog"
	"quickly.link/configs/configsredis"
	"quickly.link/configs/configssession"
	"quickly.link/pkg/pagecache"
	"quickly.link/pkg/queue"
	"quickly.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env yoksa ortam değişkenleriyle devam edilir
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()
	db := configsdatabase.GetDB()

	configssession.InitSession()

	// Önbellek geçersiz kılma için Redis; kuyruklama için asynq istemcisi.
	// Redis erişilemezse invalidasyon çağrıları loglanıp yutulur.
	var cache pagecache.Invalidator = pagecache.NewRedisInvalidator(configsredis.NewClient())

	queueClient := queue.NewClient()
	defer func() {
		if err := queueClient.Close(); err != nil {
			configslog.Log.Warn("Kuyruk istemcisi kapatılamadı", zap.Error(err))
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:      "Quickly",
		ErrorHandler: globalErrorHandler,
	})

	routes.SetupRoutes(app, db, cache, queueClient)

	// Graceful shutdown: SIGINT/SIGTERM geldiğinde açık istekler tamamlanır.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatma hatası", zap.Error(err))
		}
	}()

	addr := os.Getenv("APP_ADDR")
	if addr == "" {
		addr = ":3000"
	}

	configslog.SLog.Infof("Sunucu %s adresinde dinliyor", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}

func globalErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("İşlenmemiş istek hatası",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.Status(code).JSON(fiber.Map{"error": "Beklenmeyen bir hata oluştu"})
}
