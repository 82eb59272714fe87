package client

import "context"

type Repository interface {
	Create(ctx context.Context, client *Client) error
	GetByID(ctx context.Context, clientID uint) (*Client, error)
	GetBySID(ctx context.Context, sid string) (*Client, error)
	GetByEmail(ctx context.Context, email string) (*Client, error)
	List(ctx context.Context, filter Filter) ([]*Client, int64, error)
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, clientID uint) error

	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type Filter struct {
	PlanID   *uint
	IsActive *bool
	Page     int
	PageSize int
}
