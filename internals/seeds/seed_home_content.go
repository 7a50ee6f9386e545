package seeds

import (
	"errors"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	homeModel "lukebarnabas_backend/internals/features/content/home/model"
	"lukebarnabas_backend/internals/locale"
)

// SeedHomeContent inserts the pinned singleton row when the table is
// empty, with the texts the app shipped with. Admin edits only ever
// update this row.
func SeedHomeContent(db *gorm.DB) {
	var existing homeModel.HomeContentModel
	err := db.First(&existing, "home_content_id = ?", homeModel.PinnedHomeContentID).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[SEED ERROR] home content lookup: %v", err)
		return
	}

	content := homeModel.HomeContentModel{
		HomeContentID: homeModel.PinnedHomeContentID,
		HomeContentWelcome: locale.Text{
			EN: "Welcome to Luke Barnabas Ministry",
			TE: "లూక్ బర్నబాస్ మినిస్ట్రీకి స్వాగతం",
			HI: "ल्यूक बारनबास मिनिस्ट्री में आपका स्वागत है",
		},
		HomeContentWatchLive: locale.Text{
			EN: "Watch Live Sermons",
			TE: "ప్రత్యక్ష ప్రసంగాలను చూడండి",
			HI: "लाइव उपदेश देखें",
		},
		HomeContentLiveBroadcast: locale.Text{
			EN: "Live Broadcast",
			TE: "ప్రత్యక్ష ప్రసారం",
			HI: "लाइव प्रसारण",
		},
		HomeContentIsLive:           false,
		HomeContentYoutubeChannelID: "UCX-KrCKFRj5FSP-hq9RQXHA",
		HomeContentUpcomingEvent: datatypes.NewJSONType(homeModel.UpcomingEvent{
			Title: locale.Text{
				EN: "Evening Prayer Meeting",
				TE: "సాయంత్రం ప్రార్థన సమావేశం",
				HI: "शाम की प्रार्थना सभा",
			},
			Date: "2025-04-23",
			Time: "7:00 PM",
			Description: locale.Text{
				EN: "Join us for our daily prayer meeting and Bible study session.",
				TE: "మా రోజువారీ ప్రార్థన సమావేశం మరియు బైబిల్ స్టడీ సెషన్‌లో చేరండి.",
				HI: "हमारी दैनिक प्रार्थना सभा और बाइबिल अध्ययन सत्र में शामिल हों।",
			},
		}),
	}

	if err := db.Create(&content).Error; err != nil {
		log.Printf("[SEED ERROR] creating home content: %v", err)
		return
	}
	log.Println("✅ Seeded home content singleton")
}
