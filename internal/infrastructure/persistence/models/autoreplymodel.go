package models

import (
	"time"

	"replydesk/internal/shared/constants"
)

// AutoReplyModel is the GORM model for the auto_replies table
type AutoReplyModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	SID       string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	ClientID  uint      `gorm:"column:client_id;not null;index"`
	Keyword   string    `gorm:"column:keyword;type:varchar(255);not null"`
	MatchMode string    `gorm:"column:match_mode;type:varchar(20);not null;default:'contains'"`
	ReplyBody string    `gorm:"column:reply_body;type:text;not null"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	Priority  int       `gorm:"column:priority;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (AutoReplyModel) TableName() string {
	return constants.TableAutoReplies
}
