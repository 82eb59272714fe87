package dto

import (
	"time"

	"replydesk/internal/domain/message"
)

type MessageDTO struct {
	ID         uint      `json:"id"`
	Sender     string    `json:"sender"`
	Channel    string    `json:"channel"`
	Body       string    `json:"body"`
	Replied    bool      `json:"replied"`
	ReceivedAt time.Time `json:"received_at"`
}

func ToMessageDTO(m *message.Message) *MessageDTO {
	if m == nil {
		return nil
	}
	return &MessageDTO{
		ID:         m.ID(),
		Sender:     m.Sender(),
		Channel:    m.Channel(),
		Body:       m.Body(),
		Replied:    m.Replied(),
		ReceivedAt: m.ReceivedAt(),
	}
}

func ToMessageDTOs(messages []*message.Message) []*MessageDTO {
	dtos := make([]*MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, ToMessageDTO(m))
	}
	return dtos
}
