package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lukebarnabas_backend/internals/features/content/sermons/controller"
	"lukebarnabas_backend/internals/features/content/sermons/model"
	"lukebarnabas_backend/internals/middlewares"
)

func SermonUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSermonController(db)

	sermons := api.Group("/sermons", middlewares.ContentCache(model.SermonModel{}.TableName()))
	sermons.Get("/", ctrl.GetAllSermons)
	sermons.Get("/:id", ctrl.GetSermonByID)
}
