package routes

import (
	public_handlers "quickly.link/handlers/public"
	"quickly.link/pkg/pagecache"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

// registerPublicRoutes kimlik gerektirmeyen ziyaretçi rotalarını tanımlar.
func registerPublicRoutes(app *fiber.App, db *gorm.DB, cache pagecache.Invalidator, queueClient *asynq.Client) {
	publicHandler := public_handlers.NewPublicHandler(db, cache, queueClient)

	app.Get("/c/:uid", publicHandler.ResolveCard)
	app.Get("/u/:username", publicHandler.PublicProfile)
	app.Post("/api/track-click", publicHandler.TrackClick)
}
