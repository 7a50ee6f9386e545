package locale

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Code is a supported UI language code.
type Code string

const (
	English Code = "en"
	Telugu  Code = "te"
	Hindi   Code = "hi"
)

// DefaultCode is Telugu, matching the ministry's primary audience.
const DefaultCode = Telugu

// LocalsKey is where the language middleware stores the resolved Code.
const LocalsKey = "app_lang"

// Parse validates a raw language code.
func Parse(raw string) (Code, bool) {
	switch Code(raw) {
	case English, Telugu, Hindi:
		return Code(raw), true
	}
	return "", false
}

// FromCtx returns the request language set by the language middleware.
// Calling it on a route without the middleware is a programming error
// and panics rather than silently defaulting.
func FromCtx(c *fiber.Ctx) Code {
	v := c.Locals(LocalsKey)
	code, ok := v.(Code)
	if !ok {
		panic("locale.FromCtx called outside the language middleware")
	}
	return code
}

// ============================
// Localized text (jsonb)
// ============================

// Text is a fixed en/te/hi string triple, stored as one jsonb column.
type Text struct {
	EN string `json:"en"`
	TE string `json:"te"`
	HI string `json:"hi"`
}

// In resolves the variant for the given language. There is no English
// fallback: an absent variant resolves to the empty string.
func (t Text) In(code Code) string {
	switch code {
	case English:
		return t.EN
	case Telugu:
		return t.TE
	case Hindi:
		return t.HI
	}
	return ""
}

func (t Text) Value() (driver.Value, error) {
	b, err := sonic.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Text) Scan(src interface{}) error {
	if src == nil {
		*t = Text{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("locale.Text: unsupported scan type %T", src)
	}
	if len(raw) == 0 {
		*t = Text{}
		return nil
	}
	return sonic.Unmarshal(raw, t)
}

func (Text) GormDataType() string {
	return "jsonb"
}

func (Text) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "jsonb"
	case "sqlite":
		return "text"
	}
	return "json"
}

var ErrEnglishRequired = errors.New("english text is required")

// RequireEnglish enforces the validation convention: English is the
// mandatory variant, te/hi may be filled in later.
func (t Text) RequireEnglish() error {
	if t.EN == "" {
		return ErrEnglishRequired
	}
	return nil
}
