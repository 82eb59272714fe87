package feature

import (
	"fmt"
	"regexp"
	"time"

	"replydesk/internal/shared/biztime"
	"replydesk/internal/shared/id"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Feature is a catalog entry describing one configurable integration
// capability and its input field schema.
type Feature struct {
	id          uint
	sid         string
	name        string
	slug        string
	description string
	fields      FieldSchema
	createdAt   time.Time
	updatedAt   time.Time
}

// NewFeature creates a new feature catalog entry.
func NewFeature(name, slug, description string, fields FieldSchema) (*Feature, error) {
	if name == "" {
		return nil, fmt.Errorf("feature name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("feature name too long (max 100 characters)")
	}
	if slug == "" {
		return nil, fmt.Errorf("feature slug is required")
	}
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("invalid feature slug: %s", slug)
	}

	sid, err := id.NewFeatureID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	if fields == nil {
		fields = FieldSchema{}
	}

	now := biztime.NowUTC()
	return &Feature{
		sid:         sid,
		name:        name,
		slug:        slug,
		description: description,
		fields:      fields,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructFeature reconstructs a feature from persistence.
func ReconstructFeature(featureID uint, sid, name, slug, description string,
	fields FieldSchema, createdAt, updatedAt time.Time) (*Feature, error) {

	if featureID == 0 {
		return nil, fmt.Errorf("feature ID cannot be zero")
	}
	if slug == "" {
		return nil, fmt.Errorf("feature slug is required")
	}
	if fields == nil {
		fields = FieldSchema{}
	}

	return &Feature{
		id:          featureID,
		sid:         sid,
		name:        name,
		slug:        slug,
		description: description,
		fields:      fields,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (f *Feature) ID() uint             { return f.id }
func (f *Feature) SID() string          { return f.sid }
func (f *Feature) Name() string         { return f.name }
func (f *Feature) Slug() string         { return f.slug }
func (f *Feature) Description() string  { return f.description }
func (f *Feature) Fields() FieldSchema  { return f.fields }
func (f *Feature) CreatedAt() time.Time { return f.createdAt }
func (f *Feature) UpdatedAt() time.Time { return f.updatedAt }

// SetID sets the feature ID (only for persistence layer use)
func (f *Feature) SetID(featureID uint) error {
	if f.id != 0 {
		return fmt.Errorf("feature ID is already set")
	}
	if featureID == 0 {
		return fmt.Errorf("feature ID cannot be zero")
	}
	f.id = featureID
	return nil
}

func (f *Feature) UpdateName(name string) error {
	if name == "" {
		return fmt.Errorf("feature name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("feature name too long (max 100 characters)")
	}
	f.name = name
	f.updatedAt = biztime.NowUTC()
	return nil
}

func (f *Feature) UpdateDescription(description string) {
	f.description = description
	f.updatedAt = biztime.NowUTC()
}

// UpdateFields replaces the declared field schema. Settings rows written
// against the previous schema keep their stored keys; keys no longer declared
// are simply not rendered.
func (f *Feature) UpdateFields(fields FieldSchema) error {
	if fields == nil {
		fields = FieldSchema{}
	}
	f.fields = fields
	f.updatedAt = biztime.NowUTC()
	return nil
}
