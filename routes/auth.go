package routes

import (
	"quickly.link/handlers"
	"quickly.link/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerAuthRoutes /auth altındaki kayıt ve oturum rotalarını tanımlar.
func registerAuthRoutes(app *fiber.App, db *gorm.DB) {
	authHandler := handlers.NewAuthHandler(db)

	guestRoutes := app.Group("/auth")
	guestRoutes.Use(middlewares.GuestMiddleware)
	guestRoutes.Post("/register", authHandler.Register)
	guestRoutes.Post("/login", authHandler.Login)

	userRoutes := app.Group("/auth")
	userRoutes.Use(middlewares.AuthMiddleware)
	userRoutes.Post("/logout", authHandler.Logout)
	userRoutes.Get("/me", authHandler.Me)
}
