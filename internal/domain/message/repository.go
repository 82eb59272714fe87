package message

import "context"

// Repository is read-only; an external integration writes the messages table.
type Repository interface {
	ListByClientID(ctx context.Context, clientID uint, filter Filter) ([]*Message, int64, error)
	CountUnreplied(ctx context.Context, clientID uint) (int64, error)
}

type Filter struct {
	Channel  *string
	Replied  *bool
	Page     int
	PageSize int
}
