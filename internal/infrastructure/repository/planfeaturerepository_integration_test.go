package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"replydesk/internal/infrastructure/persistence/models"
	"replydesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.PlanFeatureModel{}, &models.ClientSettingModel{})
	require.NoError(t, err)

	return db
}

func TestPlanFeatureRepository_EnableIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanFeatureRepository(db, logger.NewLogger())
	ctx := context.Background()

	require.NoError(t, repo.EnableFeature(ctx, 1, 10))
	require.NoError(t, repo.EnableFeature(ctx, 1, 10))

	enabled, err := repo.IsEnabled(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, enabled)

	var count int64
	require.NoError(t, db.Model(&models.PlanFeatureModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPlanFeatureRepository_DisableIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanFeatureRepository(db, logger.NewLogger())
	ctx := context.Background()

	require.NoError(t, repo.EnableFeature(ctx, 1, 10))
	require.NoError(t, repo.DisableFeature(ctx, 1, 10))
	require.NoError(t, repo.DisableFeature(ctx, 1, 10))

	enabled, err := repo.IsEnabled(ctx, 1, 10)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestPlanFeatureRepository_DisableLeavesOtherBindings(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanFeatureRepository(db, logger.NewLogger())
	ctx := context.Background()

	require.NoError(t, repo.EnableFeature(ctx, 1, 10))
	require.NoError(t, repo.EnableFeature(ctx, 1, 20))
	require.NoError(t, repo.EnableFeature(ctx, 2, 10))

	require.NoError(t, repo.DisableFeature(ctx, 1, 10))

	ids, err := repo.ListFeatureIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{20}, ids)

	enabled, err := repo.IsEnabled(ctx, 2, 10)
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestPlanFeatureRepository_ListFeatureIDsOrdered(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanFeatureRepository(db, logger.NewLogger())
	ctx := context.Background()

	require.NoError(t, repo.EnableFeature(ctx, 1, 30))
	require.NoError(t, repo.EnableFeature(ctx, 1, 10))
	require.NoError(t, repo.EnableFeature(ctx, 1, 20))

	ids, err := repo.ListFeatureIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{10, 20, 30}, ids)
}

func TestPlanFeatureRepository_DeleteByPlanID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanFeatureRepository(db, logger.NewLogger())
	ctx := context.Background()

	require.NoError(t, repo.EnableFeature(ctx, 1, 10))
	require.NoError(t, repo.EnableFeature(ctx, 1, 20))
	require.NoError(t, repo.EnableFeature(ctx, 2, 10))

	require.NoError(t, repo.DeleteByPlanID(ctx, 1))

	ids, err := repo.ListFeatureIDs(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = repo.ListFeatureIDs(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint{10}, ids)
}

func TestPlanFeatureRepository_DeleteByFeatureID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanFeatureRepository(db, logger.NewLogger())
	ctx := context.Background()

	require.NoError(t, repo.EnableFeature(ctx, 1, 10))
	require.NoError(t, repo.EnableFeature(ctx, 2, 10))
	require.NoError(t, repo.EnableFeature(ctx, 2, 20))

	require.NoError(t, repo.DeleteByFeatureID(ctx, 10))

	enabled, err := repo.IsEnabled(ctx, 1, 10)
	require.NoError(t, err)
	assert.False(t, enabled)

	ids, err := repo.ListFeatureIDs(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint{20}, ids)
}
