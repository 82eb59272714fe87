package models

import (
	"time"

	"gorm.io/datatypes"

	"replydesk/internal/shared/constants"
)

// ClientSettingModel is the GORM model for the client_settings table. The
// composite unique index on (client_id, feature_id) makes the upsert a
// genuine atomic conditional write rather than check-then-write.
type ClientSettingModel struct {
	ID        uint           `gorm:"primaryKey;autoIncrement"`
	ClientID  uint           `gorm:"column:client_id;not null;uniqueIndex:idx_client_feature"`
	FeatureID uint           `gorm:"column:feature_id;not null;uniqueIndex:idx_client_feature"`
	Settings  datatypes.JSON `gorm:"column:settings"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (ClientSettingModel) TableName() string {
	return constants.TableClientSettings
}
