package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendString("ok")
	})
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantPage   int
		wantPer    int
		wantOffset int
	}{
		{name: "defaults", target: "/", wantPage: 1, wantPer: 20, wantOffset: 0},
		{name: "explicit", target: "/?page=3&per_page=10", wantPage: 3, wantPer: 10, wantOffset: 20},
		{name: "limit alias", target: "/?limit=5", wantPage: 1, wantPer: 5, wantOffset: 0},
		{name: "caps per_page", target: "/?per_page=500", wantPage: 1, wantPer: 100, wantOffset: 0},
		{name: "negative page clamps", target: "/?page=-2", wantPage: 1, wantPer: 20, wantOffset: 0},
		{name: "garbage per_page falls back", target: "/?per_page=abc", wantPage: 1, wantPer: 20, wantOffset: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := resolveFor(t, tt.target)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPer, p.PerPage)
			assert.Equal(t, tt.wantOffset, p.Offset)
			assert.Equal(t, p.PerPage, p.Limit)
		})
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}, 25, 10)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 10, p.Count)

	last := BuildPagination(Paging{Page: 3, PerPage: 10}, 25, 5)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
}
