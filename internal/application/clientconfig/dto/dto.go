package dto

// EnabledFeatureDTO is one entry of a client's configuration listing: the
// feature identity plus whether the caller may edit its settings.
type EnabledFeatureDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	CanEdit     bool   `json:"can_edit"`
}

type ConfigurationDTO struct {
	ClientID string               `json:"client_id"`
	PlanID   string               `json:"plan_id,omitempty"`
	Features []*EnabledFeatureDTO `json:"features"`
}

// ResolvedFieldDTO is one schema field with its effective value. Fields
// follow the schema's declared order; a field with no stored value renders
// as an empty string.
type ResolvedFieldDTO struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type FeatureSettingsDTO struct {
	FeatureID string              `json:"feature_id"`
	Slug      string              `json:"slug"`
	CanEdit   bool                `json:"can_edit"`
	Fields    []*ResolvedFieldDTO `json:"fields"`
}
