package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lukebarnabas_backend/internals/features/shell/dto"
)

func TestGetShellConfig_Defaults(t *testing.T) {
	app := fiber.New()
	app.Get("/app-config", NewShellConfigController().GetShellConfig)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/app-config", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool               `json:"success"`
		Data    dto.ShellConfigDTO `json:"data"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.True(t, body.Success)
	assert.Equal(t, "app.lukebarnabas.connect", body.Data.AppID)
	assert.Equal(t, "luke-barnabas-connect", body.Data.AppName)
	assert.Equal(t, "dist", body.Data.WebDir)
	assert.Equal(t, "https", body.Data.Server.AndroidScheme)
	assert.True(t, body.Data.Server.Cleartext)
	assert.Equal(t, 3000, body.Data.Plugins.SplashScreen.LaunchShowDurationMs)
	assert.Equal(t, "#FFFFFF", body.Data.Plugins.SplashScreen.BackgroundColor)
	assert.Equal(t, []string{"badge", "sound", "alert"}, body.Data.Plugins.PushNotifications.PresentationOptions)
}

func TestGetShellConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SHELL_SERVER_URL", "https://app.lukebarnabas.example")
	t.Setenv("SHELL_SPLASH_DURATION_MS", "1500")
	t.Setenv("SHELL_SERVER_CLEARTEXT", "false")

	app := fiber.New()
	app.Get("/app-config", NewShellConfigController().GetShellConfig)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/app-config", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data dto.ShellConfigDTO `json:"data"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "https://app.lukebarnabas.example", body.Data.Server.URL)
	assert.Equal(t, 1500, body.Data.Plugins.SplashScreen.LaunchShowDurationMs)
	assert.False(t, body.Data.Server.Cleartext)
}
