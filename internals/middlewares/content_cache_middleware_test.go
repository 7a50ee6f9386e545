package middlewares

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	sermonController "lukebarnabas_backend/internals/features/content/sermons/controller"
	"lukebarnabas_backend/internals/features/content/sermons/dto"
	"lukebarnabas_backend/internals/features/content/sermons/model"
	helper "lukebarnabas_backend/internals/helpers"
	"lukebarnabas_backend/internals/locale"
)

// Mutations bump the table version, so a cached public GET must be
// unreachable after an admin write even within the cache expiry window.
func TestContentCache_InvalidatesOnMutation(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SermonModel{}))

	table := model.SermonModel{}.TableName()
	ctrl := sermonController.NewSermonController(db)

	app := fiber.New()
	app.Use(LanguageMiddleware())
	app.Get("/sermons", ContentCache(table), ctrl.GetAllSermons)
	app.Post("/sermons", ctrl.CreateSermon)

	post := func(title, videoID, date string) {
		t.Helper()
		raw, err := json.Marshal(dto.CreateSermonRequest{
			SermonTitle:   locale.Text{EN: title},
			SermonVideoID: videoID,
			SermonDate:    date,
		})
		require.NoError(t, err)
		req := httptest.NewRequest(fiber.MethodPost, "/sermons", bytes.NewReader(raw))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	list := func() []dto.LocalizedSermonDTO {
		t.Helper()
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/sermons", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var body struct {
			Data []dto.LocalizedSermonDTO `json:"data"`
		}
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &body))
		return body.Data
	}

	post("Grace", "abc12345678", "2025-05-01")
	require.Len(t, list(), 1)

	// a row written behind the controller's back does not bump the
	// version, so the cached response keeps serving
	stale, err := helper.ParseContentDate("2025-05-02")
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.SermonModel{
		SermonTitle:   locale.Text{EN: "Hidden"},
		SermonVideoID: "hidden12345",
		SermonDate:    stale,
	}).Error)
	assert.Len(t, list(), 1, "expected the cached list while the version is unchanged")

	// a controller mutation bumps the version; the next GET misses the
	// cache and sees everything
	post("Walking in Love", "older123456", "2025-04-15")
	fresh := list()
	assert.Len(t, fresh, 3)
}

func TestContentCache_SkipsNonGet(t *testing.T) {
	app := fiber.New()
	app.Use(LanguageMiddleware())

	hits := 0
	handler := func(c *fiber.Ctx) error {
		hits++
		return c.SendStatus(fiber.StatusOK)
	}
	app.Post("/notes", ContentCache("notes"), handler)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/notes", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, 2, hits, "mutating verbs must never be served from cache")
}
