package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lukebarnabas_backend/internals/features/content/sermons/dto"
	"lukebarnabas_backend/internals/features/content/sermons/model"
	helper "lukebarnabas_backend/internals/helpers"
	"lukebarnabas_backend/internals/locale"
)

var validateSermon = helper.NewValidator()

type SermonController struct {
	DB *gorm.DB
}

func NewSermonController(db *gorm.DB) *SermonController {
	return &SermonController{DB: db}
}

// =============================
// 📄 Get All Sermons (public)
// =============================
// Ordered newest first on the structured date column.
func (ctrl *SermonController) GetAllSermons(c *fiber.Ctx) error {
	code := locale.FromCtx(c)

	if ctrl.DB == nil {
		// degraded mode: empty archive, not an error
		return helper.JsonList(c, "ok", []dto.LocalizedSermonDTO{}, nil)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.SermonModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve sermons")
	}

	var sermons []model.SermonModel
	if err := ctrl.DB.
		Order("sermon_date DESC, sermon_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&sermons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve sermons")
	}

	result := make([]dto.LocalizedSermonDTO, 0, len(sermons))
	for _, s := range sermons {
		result = append(result, dto.ToLocalizedSermonDTO(s, code))
	}

	return helper.JsonList(c, "ok", result, helper.BuildPagination(paging, total, len(result)))
}

// =============================
// 🔍 Get Sermon By ID (public)
// =============================
func (ctrl *SermonController) GetSermonByID(c *fiber.Ctx) error {
	if ctrl.DB == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sermon not found")
	}

	var sermon model.SermonModel
	if err := ctrl.DB.First(&sermon, "sermon_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sermon not found")
	}

	return helper.JsonOK(c, "ok", dto.ToSermonDTO(sermon))
}

// =============================
// ➕ Create Sermon (admin)
// =============================
func (ctrl *SermonController) CreateSermon(c *fiber.Ctx) error {
	var body dto.CreateSermonRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSermon.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if err := body.SermonTitle.RequireEnglish(); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"sermon_title.en": {"required"},
		})
	}

	date, err := helper.ParseContentDate(body.SermonDate)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"sermon_date": {"datetime"},
		})
	}

	sermon := model.SermonModel{
		SermonTitle:        body.SermonTitle,
		SermonSummary:      body.SermonSummary,
		SermonVideoID:      body.SermonVideoID,
		SermonThumbnailURL: body.SermonThumbnailURL,
		SermonDate:         date,
	}

	if err := ctrl.DB.Create(&sermon).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create sermon")
	}

	helper.BumpContentVersion(model.SermonModel{}.TableName())
	return helper.JsonCreated(c, "Sermon added", dto.ToSermonDTO(sermon))
}

// =============================
// 🔄 Update Sermon (admin)
// =============================
// Typed per-field partial update; absent fields stay untouched.
func (ctrl *SermonController) UpdateSermon(c *fiber.Ctx) error {
	var body dto.UpdateSermonRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSermon.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var sermon model.SermonModel
	if err := ctrl.DB.First(&sermon, "sermon_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sermon not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up sermon")
	}

	if body.SermonTitle != nil {
		if err := body.SermonTitle.RequireEnglish(); err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"sermon_title.en": {"required"},
			})
		}
		sermon.SermonTitle = *body.SermonTitle
	}
	if body.SermonSummary != nil {
		sermon.SermonSummary = *body.SermonSummary
	}
	if body.SermonVideoID != nil {
		sermon.SermonVideoID = *body.SermonVideoID
	}
	if body.SermonThumbnailURL != nil {
		sermon.SermonThumbnailURL = *body.SermonThumbnailURL
	}
	if body.SermonDate != nil {
		date, err := helper.ParseContentDate(*body.SermonDate)
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"sermon_date": {"datetime"},
			})
		}
		sermon.SermonDate = date
	}

	if err := ctrl.DB.Save(&sermon).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update sermon")
	}

	helper.BumpContentVersion(model.SermonModel{}.TableName())
	return helper.JsonUpdated(c, "Sermon updated", dto.ToSermonDTO(sermon))
}

// =============================
// 🗑️ Delete Sermon (admin)
// =============================
// Idempotent: deleting an id that is already gone still succeeds.
func (ctrl *SermonController) DeleteSermon(c *fiber.Ctx) error {
	if err := ctrl.DB.Delete(&model.SermonModel{}, "sermon_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete sermon")
	}

	helper.BumpContentVersion(model.SermonModel{}.TableName())
	return helper.JsonDeleted(c, "Sermon deleted", nil)
}
