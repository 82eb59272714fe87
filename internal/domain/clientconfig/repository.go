package clientconfig

import "context"

type Repository interface {
	// GetByClientAndFeature returns the single settings row for the pair, or
	// (nil, nil) when none exists.
	GetByClientAndFeature(ctx context.Context, clientID, featureID uint) (*FeatureSettings, error)
	// Upsert writes the settings row atomically: the row is inserted when the
	// (client_id, feature_id) pair is new, otherwise its values are replaced.
	// The unique index on the pair guarantees at most one row survives.
	Upsert(ctx context.Context, settings *FeatureSettings) error
	// DeleteByClientID removes all settings of a client (client deletion
	// cascade). Feature deletion deliberately has no counterpart: rows for a
	// deleted or unbound feature stay dormant.
	DeleteByClientID(ctx context.Context, clientID uint) error
}
