package dto

// ShellConfigDTO mirrors the mobile packaging contract (the Capacitor
// config the app shell is built with). Served read-only so the dashboard
// can display what the published shell points at.
type ShellConfigDTO struct {
	AppID   string         `json:"app_id"`
	AppName string         `json:"app_name"`
	WebDir  string         `json:"web_dir"`
	Server  ShellServerDTO `json:"server"`
	Plugins ShellPlugins   `json:"plugins"`
}

type ShellServerDTO struct {
	URL           string `json:"url"`
	AndroidScheme string `json:"android_scheme"`
	Cleartext     bool   `json:"cleartext"`
}

type ShellPlugins struct {
	SplashScreen      SplashScreenConfig      `json:"splash_screen"`
	PushNotifications PushNotificationsConfig `json:"push_notifications"`
}

type SplashScreenConfig struct {
	LaunchShowDurationMs int    `json:"launch_show_duration_ms"`
	BackgroundColor      string `json:"background_color"`
}

type PushNotificationsConfig struct {
	PresentationOptions []string `json:"presentation_options"`
}
