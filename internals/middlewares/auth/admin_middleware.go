package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lukebarnabas_backend/internals/configs"
	authModel "lukebarnabas_backend/internals/features/admin/auth/model"
)

// AdminAuthMiddleware guards every mutating content route. Session state
// lives in the verified JWT claims threaded through c.Locals; nothing is
// read from ambient storage.
func AdminAuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Admin features unavailable without a database")
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// revoked-on-logout check
		var revoked authModel.TokenBlacklist
		if err := db.Where("token = ?", tokenString).First(&revoked).Error; err == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is revoked")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] blacklist lookup:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		adminID, err := extractAdminID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing admin ID")
		}

		if err := ensureAdminActive(db, adminID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Admin not found")
			}
			return fiber.NewError(fiber.StatusForbidden, "This account has been disabled")
		}

		c.Locals("admin_id", adminID.String())
		c.Locals("admin_token", tokenString)
		if name, ok := claims["username"].(string); ok {
			c.Locals("admin_username", name)
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", errors.New("Unauthorized - Missing Authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("Unauthorized - Invalid Authorization header")
	}
	return parts[1], nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	exp := time.Unix(int64(expFloat), 0)
	if time.Now().After(exp.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func extractAdminID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["admin_id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("admin_id claim missing")
	}
	return uuid.Parse(raw)
}

func ensureAdminActive(db *gorm.DB, id uuid.UUID) error {
	var admin authModel.AdminModel
	if err := db.Select("admin_id", "admin_is_active").
		First(&admin, "admin_id = ?", id).Error; err != nil {
		return err
	}
	if !admin.AdminIsActive {
		return errors.New("admin disabled")
	}
	return nil
}
