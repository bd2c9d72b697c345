package routes

import (
	dashboard_handlers "quickly.link/handlers/dashboard"
	"quickly.link/middlewares"
	"quickly.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerDashboardRoutes /dashboard altındaki yönetim rotalarını tanımlar.
// Sadece sistem yöneticilerinin (IsSystem == true) erişimine izin verilir.
func registerDashboardRoutes(app *fiber.App, db *gorm.DB) {
	cardHandler := dashboard_handlers.NewDashboardCardHandler(db)
	orderHandler := dashboard_handlers.NewDashboardOrderHandler(db)

	authService := services.NewAuthService(db)

	dashboardGroup := app.Group("/dashboard",
		middlewares.AuthMiddleware,                // 1. Giriş yapmış mı?
		middlewares.StatusMiddleware(authService), // 2. Hesap aktif mi?
		middlewares.RequireSystem(),               // 3. Sistem yöneticisi mi?
	)

	dashboardGroup.Get("/cards", cardHandler.ListCards)
	dashboardGroup.Post("/cards/provision", cardHandler.ProvisionCards)
	dashboardGroup.Post("/cards/status/:id", cardHandler.SetCardStatus)

	dashboardGroup.Get("/orders", orderHandler.ListOrders)
	dashboardGroup.Post("/orders/status/:id", orderHandler.UpdateOrderStatus)
}
