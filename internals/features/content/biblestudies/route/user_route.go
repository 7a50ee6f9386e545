package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lukebarnabas_backend/internals/features/content/biblestudies/controller"
	"lukebarnabas_backend/internals/features/content/biblestudies/model"
	"lukebarnabas_backend/internals/middlewares"
)

func BibleStudyUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBibleStudyController(db)

	meetings := api.Group("/bible-studies", middlewares.ContentCache(model.BibleStudyModel{}.TableName()))
	meetings.Get("/", ctrl.GetAllMeetings)
	meetings.Get("/today", ctrl.GetTodaysMeeting)
	meetings.Get("/:id", ctrl.GetMeetingByID)
}
