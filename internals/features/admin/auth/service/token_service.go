package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"lukebarnabas_backend/internals/configs"
	"lukebarnabas_backend/internals/features/admin/auth/model"
)

const accessTokenTTL = 12 * time.Hour

var ErrMissingSecret = errors.New("JWT secret is not configured")

// IssueAdminToken signs an HS256 access token for a dashboard session.
func IssueAdminToken(admin model.AdminModel) (string, time.Time, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", time.Time{}, ErrMissingSecret
	}

	expiresAt := time.Now().Add(accessTokenTTL)
	claims := jwt.MapClaims{
		"admin_id": admin.AdminID.String(),
		"username": admin.AdminUsername,
		"iat":      time.Now().Unix(),
		"exp":      expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// RevokeToken puts a presented token on the blacklist until its natural
// expiry; re-revoking the same token is a no-op.
func RevokeToken(db *gorm.DB, tokenString string) error {
	expiredAt := time.Now().Add(accessTokenTTL)

	// best effort: keep the real exp so cleanup can drop it on time
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expFloat), 0)
		}
	}

	entry := model.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	if err := db.Where("token = ?", tokenString).FirstOrCreate(&entry).Error; err != nil {
		return err
	}
	return nil
}
