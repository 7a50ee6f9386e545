package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"lukebarnabas_backend/internals/configs"
	"lukebarnabas_backend/internals/features/shell/dto"
	helper "lukebarnabas_backend/internals/helpers"
)

type ShellConfigController struct{}

func NewShellConfigController() *ShellConfigController {
	return &ShellConfigController{}
}

// =============================
// 📱 App Shell Config (public)
// =============================
// Env-overridable, defaulting to the values the shipped shell was
// packaged with.
func (ctrl *ShellConfigController) GetShellConfig(c *fiber.Ctx) error {
	splashMs := 3000
	if raw := configs.GetEnv("SHELL_SPLASH_DURATION_MS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			splashMs = parsed
		}
	}
	cleartext := configs.GetEnv("SHELL_SERVER_CLEARTEXT", "true") == "true"

	cfg := dto.ShellConfigDTO{
		AppID:   configs.GetEnv("SHELL_APP_ID", "app.lukebarnabas.connect"),
		AppName: configs.GetEnv("SHELL_APP_NAME", "luke-barnabas-connect"),
		WebDir:  configs.GetEnv("SHELL_WEB_DIR", "dist"),
		Server: dto.ShellServerDTO{
			URL:           configs.GetEnv("SHELL_SERVER_URL"),
			AndroidScheme: configs.GetEnv("SHELL_ANDROID_SCHEME", "https"),
			Cleartext:     cleartext,
		},
		Plugins: dto.ShellPlugins{
			SplashScreen: dto.SplashScreenConfig{
				LaunchShowDurationMs: splashMs,
				BackgroundColor:      configs.GetEnv("SHELL_SPLASH_BG", "#FFFFFF"),
			},
			PushNotifications: dto.PushNotificationsConfig{
				PresentationOptions: []string{"badge", "sound", "alert"},
			},
		},
	}

	return helper.JsonOK(c, "ok", cfg)
}
