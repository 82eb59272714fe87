package models

import (
	"time"

	"replydesk/internal/shared/constants"
)

// MessageModel is the GORM model for the messages table. Rows are written by
// the external channel integration; this service only reads them.
type MessageModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	ClientID   uint      `gorm:"column:client_id;not null;index"`
	Sender     string    `gorm:"column:sender;type:varchar(255)"`
	Channel    string    `gorm:"column:channel;type:varchar(50)"`
	Body       string    `gorm:"column:body;type:text"`
	Replied    bool      `gorm:"column:replied;not null;default:false"`
	ReceivedAt time.Time `gorm:"column:received_at;index"`
}

// TableName returns the table name for GORM
func (MessageModel) TableName() string {
	return constants.TableMessages
}
