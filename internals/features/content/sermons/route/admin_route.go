package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lukebarnabas_backend/internals/features/content/sermons/controller"
)

func SermonAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSermonController(db)

	sermons := api.Group("/sermons")
	sermons.Post("/", ctrl.CreateSermon)
	sermons.Put("/:id", ctrl.UpdateSermon)
	sermons.Delete("/:id", ctrl.DeleteSermon)
}
