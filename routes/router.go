package routes

import (
	"quickly.link/middlewares"
	"quickly.link/pkg/pagecache"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
// Bağımlılıklar (DB, önbellek, kuyruk) yukarıdan enjekte edilir; hiçbir
// handler global istemciye dokunmaz.
func SetupRoutes(app *fiber.App, db *gorm.DB, cache pagecache.Invalidator, queueClient *asynq.Client) {
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(middlewares.SessionLocals())

	registerAuthRoutes(app, db)
	registerPanelRoutes(app, db, cache, queueClient)
	registerDashboardRoutes(app, db)

	// Public rotalar en sonda; /c/:uid ve /u/:username herkese açıktır.
	registerPublicRoutes(app, db, cache, queueClient)

	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
}
