package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lukebarnabas_backend/internals/features/admin/auth/dto"
	"lukebarnabas_backend/internals/features/admin/auth/model"
	"lukebarnabas_backend/internals/features/admin/auth/service"
	helper "lukebarnabas_backend/internals/helpers"
)

var validateAuth = helper.NewValidator()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// 🔐 Login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	if ctrl.DB == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Admin login unavailable without a database")
	}

	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var admin model.AdminModel
	if err := ctrl.DB.First(&admin, "admin_username = ?", body.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up admin")
	}
	if !admin.AdminIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "This account has been disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, expiresAt, err := service.IssueAdminToken(admin)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Admin:       dto.ToAdminDTO(admin),
	})
}

// =============================
// 🚪 Logout
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("admin_token").(string)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No active session")
	}
	if err := service.RevokeToken(ctrl.DB, tokenString); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke token")
	}
	return helper.JsonOK(c, "Logged out", nil)
}

// =============================
// 🔑 Change Password
// =============================
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	var body dto.ChangePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	adminID, _ := c.Locals("admin_id").(string)
	if adminID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var admin model.AdminModel
	if err := ctrl.DB.First(&admin, "admin_id = ?", adminID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Admin not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(body.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}

	if err := ctrl.DB.Model(&admin).Update("admin_password", string(newHash)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
