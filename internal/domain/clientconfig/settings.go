// Package clientconfig holds the per-client feature settings written against
// a feature's declared field schema.
package clientconfig

import (
	"fmt"
	"time"

	"replydesk/internal/shared/biztime"
)

// FeatureSettings is the persisted value set one client has entered for one
// feature. At most one row exists per (client, feature); the values map is
// replaced wholesale on save, never merged. Keys written under an older
// schema are retained even when the feature no longer declares them.
type FeatureSettings struct {
	id        uint
	clientID  uint
	featureID uint
	values    map[string]string
	createdAt time.Time
	updatedAt time.Time
}

func NewFeatureSettings(clientID, featureID uint, values map[string]string) (*FeatureSettings, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if featureID == 0 {
		return nil, fmt.Errorf("feature ID is required")
	}
	if values == nil {
		values = make(map[string]string)
	}

	now := biztime.NowUTC()
	return &FeatureSettings{
		clientID:  clientID,
		featureID: featureID,
		values:    values,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructFeatureSettings(settingsID, clientID, featureID uint,
	values map[string]string, createdAt, updatedAt time.Time) (*FeatureSettings, error) {

	if settingsID == 0 {
		return nil, fmt.Errorf("settings ID cannot be zero")
	}
	if values == nil {
		values = make(map[string]string)
	}

	return &FeatureSettings{
		id:        settingsID,
		clientID:  clientID,
		featureID: featureID,
		values:    values,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *FeatureSettings) ID() uint                  { return s.id }
func (s *FeatureSettings) ClientID() uint            { return s.clientID }
func (s *FeatureSettings) FeatureID() uint           { return s.featureID }
func (s *FeatureSettings) Values() map[string]string { return s.values }
func (s *FeatureSettings) CreatedAt() time.Time      { return s.createdAt }
func (s *FeatureSettings) UpdatedAt() time.Time      { return s.updatedAt }

// SetID sets the settings ID (only for persistence layer use)
func (s *FeatureSettings) SetID(settingsID uint) {
	s.id = settingsID
}

// Value returns the stored value for a field name, or "" when absent.
func (s *FeatureSettings) Value(name string) string {
	return s.values[name]
}

// Replace overwrites the stored values with exactly the given set.
func (s *FeatureSettings) Replace(values map[string]string) {
	if values == nil {
		values = make(map[string]string)
	}
	s.values = values
	s.updatedAt = biztime.NowUTC()
}
