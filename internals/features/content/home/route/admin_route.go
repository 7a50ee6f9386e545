package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lukebarnabas_backend/internals/features/content/home/controller"
)

func HomeContentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHomeContentController(db)

	home := api.Group("/home")
	home.Get("/", ctrl.GetHomeContentAdmin)
	home.Put("/", ctrl.UpdateHomeContent)
	home.Patch("/live", ctrl.SetLiveStatus)
}
