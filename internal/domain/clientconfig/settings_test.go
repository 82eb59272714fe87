package clientconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeatureSettings(t *testing.T) {
	settings, err := NewFeatureSettings(1, 3, map[string]string{"api_key": "secret"})
	require.NoError(t, err)

	assert.Equal(t, uint(1), settings.ClientID())
	assert.Equal(t, uint(3), settings.FeatureID())
	assert.Equal(t, "secret", settings.Value("api_key"))
}

func TestNewFeatureSettings_NilValues(t *testing.T) {
	settings, err := NewFeatureSettings(1, 3, nil)
	require.NoError(t, err)
	assert.NotNil(t, settings.Values())
	assert.Equal(t, "", settings.Value("anything"))
}

func TestNewFeatureSettings_RequiresClientAndFeature(t *testing.T) {
	_, err := NewFeatureSettings(0, 3, nil)
	assert.Error(t, err)

	_, err = NewFeatureSettings(1, 0, nil)
	assert.Error(t, err)
}

func TestFeatureSettings_Value_MissingKeyIsEmpty(t *testing.T) {
	settings, err := NewFeatureSettings(1, 3, map[string]string{"endpoint": "https://x.test"})
	require.NoError(t, err)

	assert.Equal(t, "https://x.test", settings.Value("endpoint"))
	assert.Equal(t, "", settings.Value("token"))
}

func TestFeatureSettings_Replace(t *testing.T) {
	now := time.Now()
	settings, err := ReconstructFeatureSettings(11, 1, 3,
		map[string]string{"endpoint": "https://old.test", "legacy": "kept"}, now, now)
	require.NoError(t, err)

	settings.Replace(map[string]string{"endpoint": "https://new.test"})

	assert.Equal(t, "https://new.test", settings.Value("endpoint"))
	// Replace is a full overwrite, not a merge.
	assert.Equal(t, "", settings.Value("legacy"))
}
