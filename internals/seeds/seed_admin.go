package seeds

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lukebarnabas_backend/internals/configs"
	authModel "lukebarnabas_backend/internals/features/admin/auth/model"
)

// SeedAdminFromEnv creates the dashboard account on first boot from
// ADMIN_USERNAME / ADMIN_PASSWORD. Existing accounts are left alone;
// password changes go through the change-password endpoint.
func SeedAdminFromEnv(db *gorm.DB) {
	username := configs.AdminUsername
	password := configs.AdminPassword
	if password == "" {
		return
	}

	var existing authModel.AdminModel
	err := db.First(&existing, "admin_username = ?", username).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[SEED ERROR] admin lookup: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED ERROR] hashing admin password: %v", err)
		return
	}

	admin := authModel.AdminModel{
		AdminUsername: username,
		AdminPassword: string(hash),
		AdminIsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[SEED ERROR] creating admin: %v", err)
		return
	}
	log.Printf("✅ Seeded admin account %q", username)
}
