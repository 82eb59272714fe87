package models

import (
	"time"

	"replydesk/internal/shared/constants"
)

// ClientModel is the GORM model for the clients table
type ClientModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	SID          string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	BusinessName string    `gorm:"column:business_name;type:varchar(255);not null"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	PlanID       *uint     `gorm:"column:plan_id;index"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return constants.TableClients
}
