package feature

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFieldSchema(t *testing.T) {
	tests := []struct {
		name    string
		fields  []FieldDefinition
		wantErr string
	}{
		{
			name: "valid schema",
			fields: []FieldDefinition{
				{Name: "api_key", Kind: FieldKindPassword},
				{Name: "endpoint", Kind: FieldKindURL},
				{Name: "retries", Kind: FieldKindNumber},
				{Name: "greeting", Kind: FieldKindText},
			},
		},
		{
			name:   "empty schema",
			fields: []FieldDefinition{},
		},
		{
			name: "empty field name",
			fields: []FieldDefinition{
				{Name: "", Kind: FieldKindText},
			},
			wantErr: "name is required",
		},
		{
			name: "duplicate field name",
			fields: []FieldDefinition{
				{Name: "api_key", Kind: FieldKindPassword},
				{Name: "api_key", Kind: FieldKindText},
			},
			wantErr: "duplicate field name",
		},
		{
			name: "invalid kind",
			fields: []FieldDefinition{
				{Name: "api_key", Kind: FieldKind("secret")},
			},
			wantErr: "invalid kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := NewFieldSchema(tt.fields)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, schema, len(tt.fields))
		})
	}
}

func TestFieldSchema_PreservesOrder(t *testing.T) {
	schema, err := NewFieldSchema([]FieldDefinition{
		{Name: "zeta", Kind: FieldKindText},
		{Name: "alpha", Kind: FieldKindText},
		{Name: "mid", Kind: FieldKindNumber},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, schema.FieldNames())

	// Round-trip through the stored JSON form keeps declaration order.
	data, err := json.Marshal(schema)
	require.NoError(t, err)

	parsed, err := ParseFieldSchema(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, parsed.FieldNames())
}

func TestParseFieldSchema_Empty(t *testing.T) {
	schema, err := ParseFieldSchema(nil)
	require.NoError(t, err)
	assert.Empty(t, schema)
}

func TestParseFieldSchema_RejectsInvalidStoredSchema(t *testing.T) {
	_, err := ParseFieldSchema([]byte(`[{"name":"x","kind":"bogus"}]`))
	assert.Error(t, err)
}

func TestFieldSchema_HasField(t *testing.T) {
	schema, err := NewFieldSchema([]FieldDefinition{
		{Name: "api_key", Kind: FieldKindPassword},
	})
	require.NoError(t, err)

	assert.True(t, schema.HasField("api_key"))
	assert.False(t, schema.HasField("missing"))
}

func TestFieldKind_IsValid(t *testing.T) {
	for _, k := range []FieldKind{FieldKindText, FieldKindPassword, FieldKindNumber, FieldKindURL} {
		assert.True(t, k.IsValid(), k.String())
	}
	assert.False(t, FieldKind("checkbox").IsValid())
	assert.False(t, FieldKind("").IsValid())
}
