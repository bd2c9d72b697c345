package routes

import (
	panel_handlers "quickly.link/handlers/panel"
	"quickly.link/middlewares"
	"quickly.link/pkg/pagecache"
	"quickly.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

// registerPanelRoutes /panel altındaki rotaları ve middleware'leri tanımlar.
// Sadece normal kullanıcıların (IsSystem == false) erişimine izin verilir.
func registerPanelRoutes(app *fiber.App, db *gorm.DB, cache pagecache.Invalidator, queueClient *asynq.Client) {
	cardHandler := panel_handlers.NewPanelCardHandler(db, cache)
	linkHandler := panel_handlers.NewPanelLinkHandler(db, cache)
	profileHandler := panel_handlers.NewPanelProfileHandler(db, cache)
	analyticsHandler := panel_handlers.NewPanelAnalyticsHandler(db, queueClient)
	orderHandler := panel_handlers.NewPanelOrderHandler(db)

	authService := services.NewAuthService(db)

	panelGroup := app.Group("/panel",
		middlewares.AuthMiddleware,                // 1. Giriş yapmış mı?
		middlewares.StatusMiddleware(authService), // 2. Hesap aktif mi?
		middlewares.RequireUser(),                 // 3. Normal kullanıcı mı?
	)

	panelGroup.Get("/cards", cardHandler.ListCards)
	panelGroup.Post("/cards/activate", cardHandler.ActivateCard)

	panelGroup.Get("/links", linkHandler.ListLinks)
	panelGroup.Post("/links", linkHandler.CreateLink)
	panelGroup.Post("/links/update/:id", linkHandler.UpdateLink)
	panelGroup.Post("/links/toggle/:id", linkHandler.ToggleLink)
	panelGroup.Post("/links/delete/:id", linkHandler.DeleteLink)
	panelGroup.Post("/links/reorder", linkHandler.ReorderLinks)

	panelGroup.Get("/profile", profileHandler.GetProfile)
	panelGroup.Post("/profile", profileHandler.UpdateProfile)
	panelGroup.Get("/profile/username-check", profileHandler.CheckUsername)

	panelGroup.Get("/analytics", analyticsHandler.GetAnalytics)

	panelGroup.Get("/products", orderHandler.ListProducts)
	panelGroup.Get("/orders", orderHandler.ListOrders)
	panelGroup.Post("/orders/create", orderHandler.CreateOrder)
}
