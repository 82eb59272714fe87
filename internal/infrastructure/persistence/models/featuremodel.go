package models

import (
	"time"

	"gorm.io/datatypes"

	"replydesk/internal/shared/constants"
)

// FeatureModel is the GORM model for the features table. Fields holds the
// ordered field schema as a JSON array of {name, kind} objects.
type FeatureModel struct {
	ID          uint           `gorm:"primaryKey;autoIncrement"`
	SID         string         `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Name        string         `gorm:"column:name;type:varchar(100);not null"`
	Slug        string         `gorm:"column:slug;type:varchar(100);not null;uniqueIndex"`
	Description string         `gorm:"column:description;type:varchar(500)"`
	Fields      datatypes.JSON `gorm:"column:fields"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (FeatureModel) TableName() string {
	return constants.TableFeatures
}
