package models

import (
	"time"

	"replydesk/internal/shared/constants"
)

// UserModel is the GORM model for the users table
type UserModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	SID          string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:'client'"`
	ClientID     *uint     `gorm:"column:client_id;index"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
