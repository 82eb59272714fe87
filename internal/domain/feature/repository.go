package feature

import "context"

type Repository interface {
	Create(ctx context.Context, feature *Feature) error
	GetByID(ctx context.Context, featureID uint) (*Feature, error)
	GetBySID(ctx context.Context, sid string) (*Feature, error)
	GetBySlug(ctx context.Context, slug string) (*Feature, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Feature, error)
	List(ctx context.Context, filter Filter) ([]*Feature, int64, error)
	Update(ctx context.Context, feature *Feature) error
	Delete(ctx context.Context, featureID uint) error

	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}

type Filter struct {
	Page     int
	PageSize int
}
