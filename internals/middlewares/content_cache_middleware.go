package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"

	helper "lukebarnabas_backend/internals/helpers"
	"lukebarnabas_backend/internals/locale"
)

// ContentCache caches public GET responses for one content table. The key
// carries the table's mutation version, so a successful admin write makes
// every cached entry for that table unreachable and the next read goes to
// the DB. Must be installed after LanguageMiddleware.
func ContentCache(table string) fiber.Handler {
	return cache.New(cache.Config{
		Expiration:   30 * time.Second,
		CacheControl: false,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.OriginalURL() + "|" + string(locale.FromCtx(c)) + "|v" + helper.ContentVersion(table)
		},
		Next: func(c *fiber.Ctx) bool {
			return c.Method() != fiber.MethodGet
		},
	})
}
