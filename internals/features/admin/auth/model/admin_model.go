package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminModel is a dashboard account. Credentials are verified server-side
// (bcrypt), replacing the old client-stored password hash.
type AdminModel struct {
	AdminID        uuid.UUID `gorm:"column:admin_id;type:uuid;primaryKey" json:"admin_id"`
	AdminUsername  string    `gorm:"column:admin_username;size:50;unique;not null" json:"admin_username"`
	AdminPassword  string    `gorm:"column:admin_password;not null" json:"-"`
	AdminIsActive  bool      `gorm:"column:admin_is_active;not null;default:true" json:"admin_is_active"`
	AdminCreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt time.Time `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (m *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminID == uuid.Nil {
		m.AdminID = uuid.New()
	}
	return nil
}
