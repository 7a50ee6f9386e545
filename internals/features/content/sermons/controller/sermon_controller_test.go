package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lukebarnabas_backend/internals/features/content/sermons/dto"
	"lukebarnabas_backend/internals/features/content/sermons/model"
	helper "lukebarnabas_backend/internals/helpers"
	"lukebarnabas_backend/internals/locale"
	"lukebarnabas_backend/internals/middlewares"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SermonModel{}))
	return db
}

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Use(middlewares.LanguageMiddleware())

	ctrl := NewSermonController(db)
	app.Get("/sermons", ctrl.GetAllSermons)
	app.Get("/sermons/:id", ctrl.GetSermonByID)
	app.Post("/sermons", ctrl.CreateSermon)
	app.Put("/sermons/:id", ctrl.UpdateSermon)
	app.Delete("/sermons/:id", ctrl.DeleteSermon)
	return app
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

type listEnvelope struct {
	Success    bool                     `json:"success"`
	Data       []dto.LocalizedSermonDTO `json:"data"`
	Pagination *helper.Pagination       `json:"pagination"`
}

type detailEnvelope struct {
	Success bool          `json:"success"`
	Data    dto.SermonDTO `json:"data"`
}

func graceRequest() dto.CreateSermonRequest {
	return dto.CreateSermonRequest{
		SermonTitle:   locale.Text{EN: "Grace", TE: "కృప", HI: "अनुग्रह"},
		SermonSummary: locale.Text{EN: "On grace.", TE: "కృప గురించి.", HI: "अनुग्रह पर।"},
		SermonVideoID: "abc12345678",
		SermonDate:    "2025-05-01",
	}
}

func TestCreateSermon_RequiresEnglishTitle(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	body := graceRequest()
	body.SermonTitle = locale.Text{TE: "కృప"}

	resp, err := app.Test(jsonRequest(t, fiber.MethodPost, "/sermons", body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// rejected before any insert
	var count int64
	require.NoError(t, db.Model(&model.SermonModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateSermon_RequiresVideoID(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	body := graceRequest()
	body.SermonVideoID = ""

	resp, err := app.Test(jsonRequest(t, fiber.MethodPost, "/sermons", body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// field keys use the JSON names clients send
	var errResp helper.ErrorResponse
	decodeBody(t, resp, &errResp)
	assert.Contains(t, errResp.Errors, "sermon_video_id")
}

func TestCreateSermon_RejectsDisplayDate(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	body := graceRequest()
	body.SermonDate = "May 1, 2025"

	resp, err := app.Test(jsonRequest(t, fiber.MethodPost, "/sermons", body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSermonRoundTrip(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	older := graceRequest()
	older.SermonTitle = locale.Text{EN: "Walking in Love"}
	older.SermonVideoID = "older123456"
	older.SermonDate = "2025-04-15"

	for _, body := range []dto.CreateSermonRequest{older, graceRequest()} {
		resp, err := app.Test(jsonRequest(t, fiber.MethodPost, "/sermons", body))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, err := app.Test(jsonRequest(t, fiber.MethodGet, "/sermons?lang=en", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list listEnvelope
	decodeBody(t, resp, &list)
	require.Len(t, list.Data, 2)

	// newest first
	assert.Equal(t, "Grace", list.Data[0].Title)
	assert.Equal(t, "Walking in Love", list.Data[1].Title)

	// saved values come back exactly
	first := list.Data[0]
	assert.Equal(t, "abc12345678", first.VideoID)
	assert.Equal(t, "2025-05-01", first.Date)
	assert.Equal(t, "May 1, 2025", first.DateDisplay)
	assert.NotEmpty(t, first.SermonID)

	detailResp, err := app.Test(jsonRequest(t, fiber.MethodGet, "/sermons/"+first.SermonID, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, detailResp.StatusCode)

	var detail detailEnvelope
	decodeBody(t, detailResp, &detail)
	assert.Equal(t, "కృప", detail.Data.SermonTitle.TE)
	assert.Equal(t, "अनुग्रह", detail.Data.SermonTitle.HI)
}

func TestSermonList_LocalizedVariants(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp, err := app.Test(jsonRequest(t, fiber.MethodPost, "/sermons", graceRequest()))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	tests := []struct {
		lang string
		want string
	}{
		{lang: "en", want: "Grace"},
		{lang: "te", want: "కృప"},
		{lang: "hi", want: "अनुग्रह"},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(t, fiber.MethodGet, "/sermons?lang="+tt.lang, nil))
			require.NoError(t, err)

			var list listEnvelope
			decodeBody(t, resp, &list)
			require.Len(t, list.Data, 1)
			assert.Equal(t, tt.want, list.Data[0].Title)
		})
	}
}

func TestUpdateSermon_TypedPartial(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp, err := app.Test(jsonRequest(t, fiber.MethodPost, "/sermons", graceRequest()))
	require.NoError(t, err)
	var created detailEnvelope
	decodeBody(t, resp, &created)

	newVideo := "zzz98765432"
	resp, err = app.Test(jsonRequest(t, fiber.MethodPut, "/sermons/"+created.Data.SermonID, dto.UpdateSermonRequest{
		SermonVideoID: &newVideo,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated detailEnvelope
	decodeBody(t, resp, &updated)
	assert.Equal(t, newVideo, updated.Data.SermonVideoID)
	// untouched fields survive
	assert.Equal(t, "Grace", updated.Data.SermonTitle.EN)
	assert.Equal(t, "2025-05-01", updated.Data.SermonDate)

	// clearing the English title is rejected
	resp, err = app.Test(jsonRequest(t, fiber.MethodPut, "/sermons/"+created.Data.SermonID, dto.UpdateSermonRequest{
		SermonTitle: &locale.Text{TE: "కృప"},
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDeleteSermon_Idempotent(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp, err := app.Test(jsonRequest(t, fiber.MethodPost, "/sermons", graceRequest()))
	require.NoError(t, err)
	var created detailEnvelope
	decodeBody(t, resp, &created)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(jsonRequest(t, fiber.MethodDelete, "/sermons/"+created.Data.SermonID, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "delete attempt %d", i+1)
	}

	resp, err = app.Test(jsonRequest(t, fiber.MethodGet, "/sermons", nil))
	require.NoError(t, err)
	var list listEnvelope
	decodeBody(t, resp, &list)
	assert.Empty(t, list.Data)
}

func TestSermonList_DBErrorSurfaces(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp, err := app.Test(jsonRequest(t, fiber.MethodGet, "/sermons", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var envelope helper.ErrorResponse
	decodeBody(t, resp, &envelope)
	assert.False(t, envelope.Success)
	assert.NotEmpty(t, envelope.Message)
}

func TestSermonList_DegradedModeServesEmpty(t *testing.T) {
	app := newTestApp(nil)

	resp, err := app.Test(jsonRequest(t, fiber.MethodGet, "/sermons", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list listEnvelope
	decodeBody(t, resp, &list)
	assert.True(t, list.Success)
	assert.Empty(t, list.Data)
}
