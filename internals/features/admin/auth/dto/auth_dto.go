package dto

import (
	"time"

	"lukebarnabas_backend/internals/features/admin/auth/model"
)

// ============================
// Request DTO
// ============================

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// ============================
// Response DTO
// ============================

type AdminDTO struct {
	AdminID       string `json:"admin_id"`
	AdminUsername string `json:"admin_username"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Admin       AdminDTO  `json:"admin"`
}

// ============================
// Converter
// ============================

func ToAdminDTO(m model.AdminModel) AdminDTO {
	return AdminDTO{
		AdminID:       m.AdminID.String(),
		AdminUsername: m.AdminUsername,
	}
}
