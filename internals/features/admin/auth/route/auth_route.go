package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lukebarnabas_backend/internals/features/admin/auth/controller"
	"lukebarnabas_backend/internals/middlewares"
	authMiddleware "lukebarnabas_backend/internals/middlewares/auth"
)

func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	authed := auth.Group("", authMiddleware.AdminAuthMiddleware(db))
	authed.Post("/logout", ctrl.Logout)
	authed.Post("/change-password", ctrl.ChangePassword)
}
