package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"replydesk/internal/domain/clientconfig"
	"replydesk/internal/infrastructure/persistence/mappers"
	"replydesk/internal/infrastructure/persistence/models"
	"replydesk/internal/shared/logger"
)

// ClientSettingRepository implements the client settings repository interface
type ClientSettingRepository struct {
	db     *gorm.DB
	mapper mappers.ClientSettingMapper
	logger logger.Interface
}

// NewClientSettingRepository creates a new client setting repository
func NewClientSettingRepository(db *gorm.DB, logger logger.Interface) clientconfig.Repository {
	return &ClientSettingRepository{
		db:     db,
		mapper: mappers.NewClientSettingMapper(),
		logger: logger,
	}
}

func (r *ClientSettingRepository) GetByClientAndFeature(ctx context.Context, clientID, featureID uint) (*clientconfig.FeatureSettings, error) {
	var model models.ClientSettingModel

	if err := r.db.WithContext(ctx).
		Where("client_id = ? AND feature_id = ?", clientID, featureID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get client settings", "client_id", clientID, "feature_id", featureID, "error", err)
		return nil, fmt.Errorf("failed to get client settings: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Upsert writes the row in one statement. The unique index on
// (client_id, feature_id) resolves concurrent saves to a single surviving
// row whose settings are the last write.
func (r *ClientSettingRepository) Upsert(ctx context.Context, settings *clientconfig.FeatureSettings) error {
	model, err := r.mapper.ToModel(settings)
	if err != nil {
		r.logger.Errorw("failed to map client settings to model", "error", err)
		return fmt.Errorf("failed to map client settings: %w", err)
	}
	// The conflict target is the (client_id, feature_id) index. Inserting an
	// explicit id would move the conflict onto the primary key instead.
	model.ID = 0

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "feature_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"settings", "updated_at"}),
		}).
		Create(model).Error; err != nil {
		r.logger.Errorw("failed to upsert client settings",
			"client_id", settings.ClientID(),
			"feature_id", settings.FeatureID(),
			"error", err,
		)
		return fmt.Errorf("failed to upsert client settings: %w", err)
	}

	if settings.ID() == 0 && model.ID != 0 {
		settings.SetID(model.ID)
	}

	r.logger.Infow("client settings saved", "client_id", settings.ClientID(), "feature_id", settings.FeatureID())
	return nil
}

func (r *ClientSettingRepository) DeleteByClientID(ctx context.Context, clientID uint) error {
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&models.ClientSettingModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete settings for client", "client_id", clientID, "error", err)
		return fmt.Errorf("failed to delete client settings: %w", err)
	}
	return nil
}
