package feature

import (
	"encoding/json"
	"fmt"
)

// FieldKind is the input kind of a feature setting field. It determines how
// the field is rendered; password masks input, number and url are input hints
// only and are not validated before persistence.
type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindPassword FieldKind = "password"
	FieldKindNumber   FieldKind = "number"
	FieldKindURL      FieldKind = "url"
)

func (k FieldKind) IsValid() bool {
	switch k {
	case FieldKindText, FieldKindPassword, FieldKindNumber, FieldKindURL:
		return true
	default:
		return false
	}
}

func (k FieldKind) String() string {
	return string(k)
}

// FieldDefinition describes one setting field of a feature.
type FieldDefinition struct {
	Name string    `json:"name"`
	Kind FieldKind `json:"kind"`
}

// FieldSchema is the ordered list of setting fields a feature declares.
// Order is significant and preserved through persistence; it is the order
// settings panels render fields in.
type FieldSchema []FieldDefinition

// NewFieldSchema validates and returns a field schema. Field names must be
// non-empty and unique within the schema; every kind must be one of the
// declared field kinds.
func NewFieldSchema(fields []FieldDefinition) (FieldSchema, error) {
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field %d: name is required", i)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("duplicate field name: %s", f.Name)
		}
		if !f.Kind.IsValid() {
			return nil, fmt.Errorf("field %s: invalid kind %q", f.Name, f.Kind)
		}
		seen[f.Name] = true
	}
	return FieldSchema(fields), nil
}

// FieldNames returns the declared field names in declared order.
func (s FieldSchema) FieldNames() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// HasField reports whether the schema declares a field with the given name.
func (s FieldSchema) HasField(name string) bool {
	for _, f := range s {
		if f.Name == name {
			return true
		}
	}
	return false
}

// MarshalJSON serializes the schema as a JSON array, keeping declaration order.
func (s FieldSchema) MarshalJSON() ([]byte, error) {
	return json.Marshal([]FieldDefinition(s))
}

// ParseFieldSchema deserializes and validates a schema from its stored JSON form.
func ParseFieldSchema(data []byte) (FieldSchema, error) {
	if len(data) == 0 {
		return FieldSchema{}, nil
	}
	var fields []FieldDefinition
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal field schema: %w", err)
	}
	return NewFieldSchema(fields)
}
