package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lukebarnabas_backend/internals/features/content/biblestudies/controller"
)

func BibleStudyAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBibleStudyController(db)

	meetings := api.Group("/bible-studies")
	meetings.Post("/", ctrl.CreateMeeting)
	meetings.Put("/:id", ctrl.UpdateMeeting)
	meetings.Delete("/:id", ctrl.DeleteMeeting)
}
