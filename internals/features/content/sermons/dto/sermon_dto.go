package dto

import (
	"time"

	"lukebarnabas_backend/internals/features/content/sermons/model"
	helper "lukebarnabas_backend/internals/helpers"
	"lukebarnabas_backend/internals/locale"
)

// ============================
// Response DTO
// ============================

type SermonDTO struct {
	SermonID           string      `json:"sermon_id"`
	SermonTitle        locale.Text `json:"sermon_title"`
	SermonSummary      locale.Text `json:"sermon_summary"`
	SermonVideoID      string      `json:"sermon_video_id"`
	SermonThumbnailURL string      `json:"sermon_thumbnail_url"`
	SermonDate         string      `json:"sermon_date"`
	SermonDateDisplay  string      `json:"sermon_date_display"`
	SermonCreatedAt    time.Time   `json:"sermon_created_at"`
	SermonUpdatedAt    time.Time   `json:"sermon_updated_at"`
}

// LocalizedSermonDTO is the flattened card shape for the public list,
// resolved to the request language.
type LocalizedSermonDTO struct {
	SermonID     string `json:"sermon_id"`
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	VideoID      string `json:"video_id"`
	ThumbnailURL string `json:"thumbnail_url"`
	Date         string `json:"date"`
	DateDisplay  string `json:"date_display"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateSermonRequest struct {
	SermonTitle        locale.Text `json:"sermon_title"`
	SermonSummary      locale.Text `json:"sermon_summary"`
	SermonVideoID      string      `json:"sermon_video_id" validate:"required,min=6,max=32"`
	SermonThumbnailURL string      `json:"sermon_thumbnail_url" validate:"omitempty,url"`
	SermonDate         string      `json:"sermon_date" validate:"required,datetime=2006-01-02"`
}

// UpdateSermonRequest is a typed partial update: nil means "leave as is".
type UpdateSermonRequest struct {
	SermonTitle        *locale.Text `json:"sermon_title"`
	SermonSummary      *locale.Text `json:"sermon_summary"`
	SermonVideoID      *string      `json:"sermon_video_id" validate:"omitempty,min=6,max=32"`
	SermonThumbnailURL *string      `json:"sermon_thumbnail_url" validate:"omitempty,url"`
	SermonDate         *string      `json:"sermon_date" validate:"omitempty,datetime=2006-01-02"`
}

// ============================
// Converter
// ============================

func ToSermonDTO(m model.SermonModel) SermonDTO {
	return SermonDTO{
		SermonID:           m.SermonID.String(),
		SermonTitle:        m.SermonTitle,
		SermonSummary:      m.SermonSummary,
		SermonVideoID:      m.SermonVideoID,
		SermonThumbnailURL: m.SermonThumbnailURL,
		SermonDate:         helper.FormatContentDate(m.SermonDate),
		SermonDateDisplay:  helper.FormatDisplayDate(m.SermonDate),
		SermonCreatedAt:    m.SermonCreatedAt,
		SermonUpdatedAt:    m.SermonUpdatedAt,
	}
}

func ToLocalizedSermonDTO(m model.SermonModel, code locale.Code) LocalizedSermonDTO {
	return LocalizedSermonDTO{
		SermonID:     m.SermonID.String(),
		Title:        m.SermonTitle.In(code),
		Summary:      m.SermonSummary.In(code),
		VideoID:      m.SermonVideoID,
		ThumbnailURL: m.SermonThumbnailURL,
		Date:         helper.FormatContentDate(m.SermonDate),
		DateDisplay:  helper.FormatDisplayDate(m.SermonDate),
	}
}
