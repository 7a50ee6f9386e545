package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lukebarnabas_backend/internals/locale"
)

// BibleStudyModel is one scheduled study meeting, online (zoom link) or
// in person (named location + coordinates for the map embed).
type BibleStudyModel struct {
	BibleStudyID           uuid.UUID   `gorm:"column:bible_study_id;type:uuid;primaryKey" json:"bible_study_id"`
	BibleStudyTitle        locale.Text `gorm:"column:bible_study_title;not null" json:"bible_study_title"`
	BibleStudyDate         time.Time   `gorm:"column:bible_study_date;type:date;not null" json:"bible_study_date"`
	BibleStudyTime         string      `gorm:"column:bible_study_time;size:50;not null" json:"bible_study_time"`
	BibleStudyZoomLink     string      `gorm:"column:bible_study_zoom_link;type:text" json:"bible_study_zoom_link"`
	BibleStudyLocationName locale.Text `gorm:"column:bible_study_location_name" json:"bible_study_location_name"`
	BibleStudyLatitude     float64     `gorm:"column:bible_study_latitude" json:"bible_study_latitude"`
	BibleStudyLongitude    float64     `gorm:"column:bible_study_longitude" json:"bible_study_longitude"`
	BibleStudyCreatedAt    time.Time   `gorm:"column:bible_study_created_at;autoCreateTime" json:"bible_study_created_at"`
	BibleStudyUpdatedAt    time.Time   `gorm:"column:bible_study_updated_at;autoUpdateTime" json:"bible_study_updated_at"`
}

func (BibleStudyModel) TableName() string {
	return "bible_studies"
}

func (m *BibleStudyModel) BeforeCreate(tx *gorm.DB) error {
	if m.BibleStudyID == uuid.Nil {
		m.BibleStudyID = uuid.New()
	}
	return nil
}
