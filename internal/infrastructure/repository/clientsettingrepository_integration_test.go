package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replydesk/internal/domain/clientconfig"
	"replydesk/internal/infrastructure/persistence/models"
	"replydesk/internal/shared/logger"
)

func TestClientSettingRepository_UpsertInsertsThenReplaces(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientSettingRepository(db, logger.NewLogger())
	ctx := context.Background()

	settings, err := clientconfig.NewFeatureSettings(1, 10, map[string]string{
		"endpoint": "https://hooks.acme.test/in",
		"token":    "s3cret",
	})
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, settings))
	assert.NotZero(t, settings.ID())

	found, err := repo.GetByClientAndFeature(ctx, 1, 10)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "https://hooks.acme.test/in", found.Value("endpoint"))
	assert.Equal(t, "s3cret", found.Value("token"))

	found.Replace(map[string]string{"endpoint": "https://hooks.acme.test/v2"})
	require.NoError(t, repo.Upsert(ctx, found))

	reloaded, err := repo.GetByClientAndFeature(ctx, 1, 10)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, "https://hooks.acme.test/v2", reloaded.Value("endpoint"))
	assert.Empty(t, reloaded.Value("token"))

	var count int64
	require.NoError(t, db.Model(&models.ClientSettingModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestClientSettingRepository_MissingRowIsNilNotError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientSettingRepository(db, logger.NewLogger())

	found, err := repo.GetByClientAndFeature(context.Background(), 1, 99)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestClientSettingRepository_DeleteByClientID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientSettingRepository(db, logger.NewLogger())
	ctx := context.Background()

	for _, featureID := range []uint{10, 20} {
		settings, err := clientconfig.NewFeatureSettings(1, featureID, map[string]string{"k": "v"})
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, settings))
	}
	other, err := clientconfig.NewFeatureSettings(2, 10, map[string]string{"k": "v"})
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, other))

	require.NoError(t, repo.DeleteByClientID(ctx, 1))

	gone, err := repo.GetByClientAndFeature(ctx, 1, 10)
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := repo.GetByClientAndFeature(ctx, 2, 10)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}
