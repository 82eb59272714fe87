package plan

import "context"

type Repository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, planID uint) (*Plan, error)
	GetBySID(ctx context.Context, sid string) (*Plan, error)
	List(ctx context.Context, filter Filter) ([]*Plan, int64, error)
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, planID uint) error

	CountClients(ctx context.Context, planID uint) (int64, error)
}

type Filter struct {
	Page     int
	PageSize int
}

// BindingRepository manages the plan/feature enablement relation. Both
// mutations are idempotent: enabling an enabled feature and disabling a
// disabled one are no-op successes.
type BindingRepository interface {
	// EnableFeature inserts the (planID, featureID) binding if absent.
	EnableFeature(ctx context.Context, planID, featureID uint) error
	// DisableFeature deletes the binding for the exact pair. Client settings
	// previously saved for the feature are left untouched.
	DisableFeature(ctx context.Context, planID, featureID uint) error
	// IsEnabled reports whether the binding exists.
	IsEnabled(ctx context.Context, planID, featureID uint) (bool, error)
	// ListFeatureIDs returns the feature IDs bound to the plan, ordered by
	// feature ID for stable iteration.
	ListFeatureIDs(ctx context.Context, planID uint) ([]uint, error)
	// DeleteByPlanID removes all bindings of a plan (plan deletion cascade).
	DeleteByPlanID(ctx context.Context, planID uint) error
	// DeleteByFeatureID removes all bindings of a feature (feature deletion
	// cascade).
	DeleteByFeatureID(ctx context.Context, featureID uint) error
}
