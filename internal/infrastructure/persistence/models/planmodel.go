package models

import (
	"time"

	"replydesk/internal/shared/constants"
)

// PlanModel is the GORM model for the plans table
type PlanModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	SID           string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Name          string    `gorm:"column:name;type:varchar(100);not null"`
	Description   string    `gorm:"column:description;type:varchar(500)"`
	Price         *uint64   `gorm:"column:price"`
	AllowSelfEdit bool      `gorm:"column:allow_self_edit;not null;default:false"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
