package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"lukebarnabas_backend/internals/locale"
)

// PinnedHomeContentID is the single row every read and write targets.
// The table is seeded once and only ever updated.
var PinnedHomeContentID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// UpcomingEvent is the nested announcement block on the home screen.
type UpcomingEvent struct {
	Title       locale.Text `json:"title"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Description locale.Text `json:"description"`
}

type HomeContentModel struct {
	HomeContentID               uuid.UUID                         `gorm:"column:home_content_id;type:uuid;primaryKey" json:"home_content_id"`
	HomeContentWelcome          locale.Text                       `gorm:"column:home_content_welcome;not null" json:"home_content_welcome"`
	HomeContentWatchLive        locale.Text                       `gorm:"column:home_content_watch_live;not null" json:"home_content_watch_live"`
	HomeContentLiveBroadcast    locale.Text                       `gorm:"column:home_content_live_broadcast;not null" json:"home_content_live_broadcast"`
	HomeContentIsLive           bool                              `gorm:"column:home_content_is_live;not null;default:false" json:"home_content_is_live"`
	HomeContentYoutubeChannelID string                            `gorm:"column:home_content_youtube_channel_id;size:64" json:"home_content_youtube_channel_id"`
	HomeContentUpcomingEvent    datatypes.JSONType[UpcomingEvent] `gorm:"column:home_content_upcoming_event" json:"home_content_upcoming_event"`
	HomeContentCreatedAt        time.Time                         `gorm:"column:home_content_created_at;autoCreateTime" json:"home_content_created_at"`
	HomeContentUpdatedAt        time.Time                         `gorm:"column:home_content_updated_at;autoUpdateTime" json:"home_content_updated_at"`
}

func (HomeContentModel) TableName() string {
	return "home_content"
}
