package models

import (
	"time"

	"replydesk/internal/shared/constants"
)

// PlanFeatureModel is the GORM model for the plan_features binding table.
// The composite unique index backs the idempotent enable/disable toggle.
type PlanFeatureModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	PlanID    uint      `gorm:"column:plan_id;not null;uniqueIndex:idx_plan_feature"`
	FeatureID uint      `gorm:"column:feature_id;not null;uniqueIndex:idx_plan_feature"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for GORM
func (PlanFeatureModel) TableName() string {
	return constants.TablePlanFeatures
}
