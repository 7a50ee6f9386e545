package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lukebarnabas_backend/internals/features/content/home/controller"
	"lukebarnabas_backend/internals/features/content/home/model"
	"lukebarnabas_backend/internals/middlewares"
)

func HomeContentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHomeContentController(db)

	home := api.Group("/home", middlewares.ContentCache(model.HomeContentModel{}.TableName()))
	home.Get("/", ctrl.GetHomeContent)
}
