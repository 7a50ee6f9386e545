package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lukebarnabas_backend/internals/locale"
)

// SermonModel is one archived sermon video. Column names are the single
// canonical casing; the old videoId/videoid split from the legacy client
// does not exist here.
type SermonModel struct {
	SermonID           uuid.UUID   `gorm:"column:sermon_id;type:uuid;primaryKey" json:"sermon_id"`
	SermonTitle        locale.Text `gorm:"column:sermon_title;not null" json:"sermon_title"`
	SermonSummary      locale.Text `gorm:"column:sermon_summary" json:"sermon_summary"`
	SermonVideoID      string      `gorm:"column:sermon_video_id;size:32;not null" json:"sermon_video_id"`
	SermonThumbnailURL string      `gorm:"column:sermon_thumbnail_url;type:text" json:"sermon_thumbnail_url"`
	SermonDate         time.Time   `gorm:"column:sermon_date;type:date;not null" json:"sermon_date"`
	SermonCreatedAt    time.Time   `gorm:"column:sermon_created_at;autoCreateTime" json:"sermon_created_at"`
	SermonUpdatedAt    time.Time   `gorm:"column:sermon_updated_at;autoUpdateTime" json:"sermon_updated_at"`
}

func (SermonModel) TableName() string {
	return "sermons"
}

// The id is generated app-side at create time and immutable thereafter.
func (m *SermonModel) BeforeCreate(tx *gorm.DB) error {
	if m.SermonID == uuid.Nil {
		m.SermonID = uuid.New()
	}
	return nil
}
