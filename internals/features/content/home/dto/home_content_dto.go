package dto

import (
	"time"

	"gorm.io/datatypes"

	"lukebarnabas_backend/internals/features/content/home/model"
	"lukebarnabas_backend/internals/locale"
)

// ============================
// Response DTO
// ============================

type HomeContentDTO struct {
	HomeContentID               string              `json:"home_content_id"`
	HomeContentWelcome          locale.Text         `json:"home_content_welcome"`
	HomeContentWatchLive        locale.Text         `json:"home_content_watch_live"`
	HomeContentLiveBroadcast    locale.Text         `json:"home_content_live_broadcast"`
	HomeContentIsLive           bool                `json:"home_content_is_live"`
	HomeContentYoutubeChannelID string              `json:"home_content_youtube_channel_id"`
	HomeContentUpcomingEvent    model.UpcomingEvent `json:"home_content_upcoming_event"`
	HomeContentCreatedAt        time.Time           `json:"home_content_created_at"`
	HomeContentUpdatedAt        time.Time           `json:"home_content_updated_at"`
}

// LocalizedHomeContentDTO is the home screen payload resolved to the
// request language. LiveHeader is the text the livestream header should
// show right now: the live-broadcast label while live, watch-live
// otherwise.
type LocalizedHomeContentDTO struct {
	Welcome          string            `json:"welcome"`
	WatchLive        string            `json:"watch_live"`
	LiveBroadcast    string            `json:"live_broadcast"`
	LiveHeader       string            `json:"live_header"`
	IsLive           bool              `json:"is_live"`
	YoutubeChannelID string            `json:"youtube_channel_id"`
	UpcomingEvent    LocalizedEventDTO `json:"upcoming_event"`
}

type LocalizedEventDTO struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

// ============================
// Update Request DTO
// ============================

// UpdateHomeContentRequest is a typed partial update of the pinned row.
type UpdateHomeContentRequest struct {
	HomeContentWelcome          *locale.Text         `json:"home_content_welcome"`
	HomeContentWatchLive        *locale.Text         `json:"home_content_watch_live"`
	HomeContentLiveBroadcast    *locale.Text         `json:"home_content_live_broadcast"`
	HomeContentIsLive           *bool                `json:"home_content_is_live"`
	HomeContentYoutubeChannelID *string              `json:"home_content_youtube_channel_id" validate:"omitempty,max=64"`
	HomeContentUpcomingEvent    *model.UpcomingEvent `json:"home_content_upcoming_event"`
}

type SetLiveRequest struct {
	IsLive bool `json:"is_live"`
}

// ============================
// Converter
// ============================

func ToHomeContentDTO(m model.HomeContentModel) HomeContentDTO {
	return HomeContentDTO{
		HomeContentID:               m.HomeContentID.String(),
		HomeContentWelcome:          m.HomeContentWelcome,
		HomeContentWatchLive:        m.HomeContentWatchLive,
		HomeContentLiveBroadcast:    m.HomeContentLiveBroadcast,
		HomeContentIsLive:           m.HomeContentIsLive,
		HomeContentYoutubeChannelID: m.HomeContentYoutubeChannelID,
		HomeContentUpcomingEvent:    m.HomeContentUpcomingEvent.Data(),
		HomeContentCreatedAt:        m.HomeContentCreatedAt,
		HomeContentUpdatedAt:        m.HomeContentUpdatedAt,
	}
}

func ToLocalizedHomeContentDTO(m model.HomeContentModel, code locale.Code) LocalizedHomeContentDTO {
	event := m.HomeContentUpcomingEvent.Data()

	liveHeader := m.HomeContentWatchLive.In(code)
	if m.HomeContentIsLive {
		liveHeader = m.HomeContentLiveBroadcast.In(code)
	}

	return LocalizedHomeContentDTO{
		Welcome:          m.HomeContentWelcome.In(code),
		WatchLive:        m.HomeContentWatchLive.In(code),
		LiveBroadcast:    m.HomeContentLiveBroadcast.In(code),
		LiveHeader:       liveHeader,
		IsLive:           m.HomeContentIsLive,
		YoutubeChannelID: m.HomeContentYoutubeChannelID,
		UpcomingEvent: LocalizedEventDTO{
			Title:       event.Title.In(code),
			Date:        event.Date,
			Time:        event.Time,
			Description: event.Description.In(code),
		},
	}
}

// NewUpcomingEventColumn wraps an event for assignment to the model column.
func NewUpcomingEventColumn(event model.UpcomingEvent) datatypes.JSONType[model.UpcomingEvent] {
	return datatypes.NewJSONType(event)
}
