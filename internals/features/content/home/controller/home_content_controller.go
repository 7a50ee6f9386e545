package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lukebarnabas_backend/internals/features/content/home/dto"
	"lukebarnabas_backend/internals/features/content/home/model"
	helper "lukebarnabas_backend/internals/helpers"
	"lukebarnabas_backend/internals/locale"
)

var validateHomeContent = helper.NewValidator()

type HomeContentController struct {
	DB *gorm.DB
}

func NewHomeContentController(db *gorm.DB) *HomeContentController {
	return &HomeContentController{DB: db}
}

func (ctrl *HomeContentController) pinnedRow() (model.HomeContentModel, error) {
	var content model.HomeContentModel
	err := ctrl.DB.First(&content, "home_content_id = ?", model.PinnedHomeContentID).Error
	return content, err
}

// =============================
// 🏠 Get Home Content (public)
// =============================
func (ctrl *HomeContentController) GetHomeContent(c *fiber.Ctx) error {
	code := locale.FromCtx(c)

	if ctrl.DB == nil {
		return helper.JsonOK(c, "ok", nil)
	}

	content, err := ctrl.pinnedRow()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "ok", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve home content")
	}

	return helper.JsonOK(c, "ok", dto.ToLocalizedHomeContentDTO(content, code))
}

// =============================
// 🏠 Get Home Content (admin, full maps)
// =============================
func (ctrl *HomeContentController) GetHomeContentAdmin(c *fiber.Ctx) error {
	content, err := ctrl.pinnedRow()
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Home content not seeded")
	}
	return helper.JsonOK(c, "ok", dto.ToHomeContentDTO(content))
}

// =============================
// 🔄 Update Home Content (admin)
// =============================
// Always targets the pinned row; the singleton is never created or
// deleted through this endpoint.
func (ctrl *HomeContentController) UpdateHomeContent(c *fiber.Ctx) error {
	var body dto.UpdateHomeContentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHomeContent.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	content, err := ctrl.pinnedRow()
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Home content not seeded")
	}

	if body.HomeContentWelcome != nil {
		if err := body.HomeContentWelcome.RequireEnglish(); err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"home_content_welcome.en": {"required"},
			})
		}
		content.HomeContentWelcome = *body.HomeContentWelcome
	}
	if body.HomeContentWatchLive != nil {
		content.HomeContentWatchLive = *body.HomeContentWatchLive
	}
	if body.HomeContentLiveBroadcast != nil {
		content.HomeContentLiveBroadcast = *body.HomeContentLiveBroadcast
	}
	if body.HomeContentIsLive != nil {
		content.HomeContentIsLive = *body.HomeContentIsLive
	}
	if body.HomeContentYoutubeChannelID != nil {
		content.HomeContentYoutubeChannelID = *body.HomeContentYoutubeChannelID
	}
	if body.HomeContentUpcomingEvent != nil {
		content.HomeContentUpcomingEvent = dto.NewUpcomingEventColumn(*body.HomeContentUpcomingEvent)
	}

	if err := ctrl.DB.Save(&content).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update home content")
	}

	helper.BumpContentVersion(model.HomeContentModel{}.TableName())
	return helper.JsonUpdated(c, "Home content updated", dto.ToHomeContentDTO(content))
}

// =============================
// 🔴 Set Live Status (admin)
// =============================
// Flips the livestream flag; the home screen header follows on the next
// read.
func (ctrl *HomeContentController) SetLiveStatus(c *fiber.Ctx) error {
	var body dto.SetLiveRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	content, err := ctrl.pinnedRow()
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Home content not seeded")
	}

	content.HomeContentIsLive = body.IsLive
	if err := ctrl.DB.Save(&content).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update live status")
	}

	helper.BumpContentVersion(model.HomeContentModel{}.TableName())
	return helper.JsonUpdated(c, "Live status updated", dto.ToHomeContentDTO(content))
}
