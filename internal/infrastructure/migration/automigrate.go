package migration

import (
	"replydesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ClientModel{},
		&models.PlanModel{},
		&models.FeatureModel{},
		&models.PlanFeatureModel{},
		&models.ClientSettingModel{},
		&models.MessageModel{},
		&models.AutoReplyModel{},
	}
}
