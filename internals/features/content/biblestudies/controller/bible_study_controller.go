package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lukebarnabas_backend/internals/features/content/biblestudies/dto"
	"lukebarnabas_backend/internals/features/content/biblestudies/model"
	helper "lukebarnabas_backend/internals/helpers"
	"lukebarnabas_backend/internals/locale"
)

var validateBibleStudy = helper.NewValidator()

type BibleStudyController struct {
	DB *gorm.DB
}

func NewBibleStudyController(db *gorm.DB) *BibleStudyController {
	return &BibleStudyController{DB: db}
}

// =============================
// 📄 Get All Meetings (public)
// =============================
// Soonest first on the structured date column.
func (ctrl *BibleStudyController) GetAllMeetings(c *fiber.Ctx) error {
	code := locale.FromCtx(c)

	if ctrl.DB == nil {
		return helper.JsonList(c, "ok", []dto.LocalizedBibleStudyDTO{}, nil)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.BibleStudyModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve meetings")
	}

	var meetings []model.BibleStudyModel
	if err := ctrl.DB.
		Order("bible_study_date ASC, bible_study_created_at ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&meetings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve meetings")
	}

	result := make([]dto.LocalizedBibleStudyDTO, 0, len(meetings))
	for _, m := range meetings {
		result = append(result, dto.ToLocalizedBibleStudyDTO(m, code))
	}

	return helper.JsonList(c, "ok", result, helper.BuildPagination(paging, total, len(result)))
}

// =============================
// 📅 Today's Meeting (public)
// =============================
// The next meeting scheduled today or later; drives the MeetingInfo block.
func (ctrl *BibleStudyController) GetTodaysMeeting(c *fiber.Ctx) error {
	code := locale.FromCtx(c)

	if ctrl.DB == nil {
		return helper.JsonOK(c, "ok", nil)
	}

	today := helper.StartOfToday()

	var meeting model.BibleStudyModel
	err := ctrl.DB.
		Where("bible_study_date >= ?", today).
		Order("bible_study_date ASC, bible_study_created_at ASC").
		First(&meeting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "ok", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve meeting")
	}

	return helper.JsonOK(c, "ok", dto.ToLocalizedBibleStudyDTO(meeting, code))
}

// =============================
// 🔍 Get Meeting By ID (public)
// =============================
func (ctrl *BibleStudyController) GetMeetingByID(c *fiber.Ctx) error {
	if ctrl.DB == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Meeting not found")
	}

	var meeting model.BibleStudyModel
	if err := ctrl.DB.First(&meeting, "bible_study_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Meeting not found")
	}

	return helper.JsonOK(c, "ok", dto.ToBibleStudyDTO(meeting))
}

// =============================
// ➕ Create Meeting (admin)
// =============================
func (ctrl *BibleStudyController) CreateMeeting(c *fiber.Ctx) error {
	var body dto.CreateBibleStudyRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBibleStudy.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if err := body.BibleStudyTitle.RequireEnglish(); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"bible_study_title.en": {"required"},
		})
	}

	date, err := helper.ParseContentDate(body.BibleStudyDate)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"bible_study_date": {"datetime"},
		})
	}

	meeting := model.BibleStudyModel{
		BibleStudyTitle:        body.BibleStudyTitle,
		BibleStudyDate:         date,
		BibleStudyTime:         body.BibleStudyTime,
		BibleStudyZoomLink:     body.BibleStudyZoomLink,
		BibleStudyLocationName: body.BibleStudyLocationName,
		BibleStudyLatitude:     body.BibleStudyLatitude,
		BibleStudyLongitude:    body.BibleStudyLongitude,
	}

	if err := ctrl.DB.Create(&meeting).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create meeting")
	}

	helper.BumpContentVersion(model.BibleStudyModel{}.TableName())
	return helper.JsonCreated(c, "Meeting added", dto.ToBibleStudyDTO(meeting))
}

// =============================
// 🔄 Update Meeting (admin)
// =============================
func (ctrl *BibleStudyController) UpdateMeeting(c *fiber.Ctx) error {
	var body dto.UpdateBibleStudyRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBibleStudy.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var meeting model.BibleStudyModel
	if err := ctrl.DB.First(&meeting, "bible_study_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Meeting not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up meeting")
	}

	if body.BibleStudyTitle != nil {
		if err := body.BibleStudyTitle.RequireEnglish(); err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"bible_study_title.en": {"required"},
			})
		}
		meeting.BibleStudyTitle = *body.BibleStudyTitle
	}
	if body.BibleStudyDate != nil {
		date, err := helper.ParseContentDate(*body.BibleStudyDate)
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"bible_study_date": {"datetime"},
			})
		}
		meeting.BibleStudyDate = date
	}
	if body.BibleStudyTime != nil {
		meeting.BibleStudyTime = *body.BibleStudyTime
	}
	if body.BibleStudyZoomLink != nil {
		meeting.BibleStudyZoomLink = *body.BibleStudyZoomLink
	}
	if body.BibleStudyLocationName != nil {
		meeting.BibleStudyLocationName = *body.BibleStudyLocationName
	}
	if body.BibleStudyLatitude != nil {
		meeting.BibleStudyLatitude = *body.BibleStudyLatitude
	}
	if body.BibleStudyLongitude != nil {
		meeting.BibleStudyLongitude = *body.BibleStudyLongitude
	}

	if err := ctrl.DB.Save(&meeting).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update meeting")
	}

	helper.BumpContentVersion(model.BibleStudyModel{}.TableName())
	return helper.JsonUpdated(c, "Meeting updated", dto.ToBibleStudyDTO(meeting))
}

// =============================
// 🗑️ Delete Meeting (admin)
// =============================
// Idempotent like sermon delete.
func (ctrl *BibleStudyController) DeleteMeeting(c *fiber.Ctx) error {
	if err := ctrl.DB.Delete(&model.BibleStudyModel{}, "bible_study_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete meeting")
	}

	helper.BumpContentVersion(model.BibleStudyModel{}.TableName())
	return helper.JsonDeleted(c, "Meeting deleted", nil)
}
