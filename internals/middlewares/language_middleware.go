package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"lukebarnabas_backend/internals/locale"
)

// LanguageMiddleware resolves the request language: ?lang= query first,
// then the X-App-Language header, otherwise the Telugu default. Unknown
// codes fall back to the default rather than erroring; the client sends
// a fixed set.
func LanguageMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := locale.DefaultCode
		if raw := c.Query("lang"); raw != "" {
			if parsed, ok := locale.Parse(raw); ok {
				code = parsed
			}
		} else if raw := c.Get("X-App-Language"); raw != "" {
			if parsed, ok := locale.Parse(raw); ok {
				code = parsed
			}
		}
		c.Locals(locale.LocalsKey, code)
		return c.Next()
	}
}
