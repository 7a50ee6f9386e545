package dto

import (
	"time"

	"lukebarnabas_backend/internals/features/content/biblestudies/model"
	helper "lukebarnabas_backend/internals/helpers"
	"lukebarnabas_backend/internals/locale"
)

// ============================
// Response DTO
// ============================

type BibleStudyDTO struct {
	BibleStudyID           string      `json:"bible_study_id"`
	BibleStudyTitle        locale.Text `json:"bible_study_title"`
	BibleStudyDate         string      `json:"bible_study_date"`
	BibleStudyDateDisplay  string      `json:"bible_study_date_display"`
	BibleStudyTime         string      `json:"bible_study_time"`
	BibleStudyZoomLink     string      `json:"bible_study_zoom_link"`
	BibleStudyLocationName locale.Text `json:"bible_study_location_name"`
	BibleStudyLatitude     float64     `json:"bible_study_latitude"`
	BibleStudyLongitude    float64     `json:"bible_study_longitude"`
	BibleStudyCreatedAt    time.Time   `json:"bible_study_created_at"`
	BibleStudyUpdatedAt    time.Time   `json:"bible_study_updated_at"`
}

// LocalizedBibleStudyDTO is the flattened meeting card for the public
// list, resolved to the request language.
type LocalizedBibleStudyDTO struct {
	BibleStudyID string  `json:"bible_study_id"`
	Title        string  `json:"title"`
	Date         string  `json:"date"`
	DateDisplay  string  `json:"date_display"`
	Time         string  `json:"time"`
	ZoomLink     string  `json:"zoom_link"`
	LocationName string  `json:"location_name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateBibleStudyRequest struct {
	BibleStudyTitle        locale.Text `json:"bible_study_title"`
	BibleStudyDate         string      `json:"bible_study_date" validate:"required,datetime=2006-01-02"`
	BibleStudyTime         string      `json:"bible_study_time" validate:"required,max=50"`
	BibleStudyZoomLink     string      `json:"bible_study_zoom_link" validate:"omitempty,url"`
	BibleStudyLocationName locale.Text `json:"bible_study_location_name"`
	BibleStudyLatitude     float64     `json:"bible_study_latitude" validate:"omitempty,latitude"`
	BibleStudyLongitude    float64     `json:"bible_study_longitude" validate:"omitempty,longitude"`
}

// UpdateBibleStudyRequest is a typed partial update: nil leaves a field
// untouched.
type UpdateBibleStudyRequest struct {
	BibleStudyTitle        *locale.Text `json:"bible_study_title"`
	BibleStudyDate         *string      `json:"bible_study_date" validate:"omitempty,datetime=2006-01-02"`
	BibleStudyTime         *string      `json:"bible_study_time" validate:"omitempty,max=50"`
	BibleStudyZoomLink     *string      `json:"bible_study_zoom_link" validate:"omitempty,url"`
	BibleStudyLocationName *locale.Text `json:"bible_study_location_name"`
	BibleStudyLatitude     *float64     `json:"bible_study_latitude" validate:"omitempty,latitude"`
	BibleStudyLongitude    *float64     `json:"bible_study_longitude" validate:"omitempty,longitude"`
}

// ============================
// Converter
// ============================

func ToBibleStudyDTO(m model.BibleStudyModel) BibleStudyDTO {
	return BibleStudyDTO{
		BibleStudyID:           m.BibleStudyID.String(),
		BibleStudyTitle:        m.BibleStudyTitle,
		BibleStudyDate:         helper.FormatContentDate(m.BibleStudyDate),
		BibleStudyDateDisplay:  helper.FormatDisplayDate(m.BibleStudyDate),
		BibleStudyTime:         m.BibleStudyTime,
		BibleStudyZoomLink:     m.BibleStudyZoomLink,
		BibleStudyLocationName: m.BibleStudyLocationName,
		BibleStudyLatitude:     m.BibleStudyLatitude,
		BibleStudyLongitude:    m.BibleStudyLongitude,
		BibleStudyCreatedAt:    m.BibleStudyCreatedAt,
		BibleStudyUpdatedAt:    m.BibleStudyUpdatedAt,
	}
}

func ToLocalizedBibleStudyDTO(m model.BibleStudyModel, code locale.Code) LocalizedBibleStudyDTO {
	return LocalizedBibleStudyDTO{
		BibleStudyID: m.BibleStudyID.String(),
		Title:        m.BibleStudyTitle.In(code),
		Date:         helper.FormatContentDate(m.BibleStudyDate),
		DateDisplay:  helper.FormatDisplayDate(m.BibleStudyDate),
		Time:         m.BibleStudyTime,
		ZoomLink:     m.BibleStudyZoomLink,
		LocationName: m.BibleStudyLocationName.In(code),
		Latitude:     m.BibleStudyLatitude,
		Longitude:    m.BibleStudyLongitude,
	}
}
