package mappers

import (
	"fmt"

	"replydesk/internal/domain/user"
	"replydesk/internal/infrastructure/persistence/models"
	"replydesk/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
}

type userMapper struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.SID,
		model.Email,
		model.PasswordHash,
		authorization.UserRole(model.Role),
		model.ClientID,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

func (m *userMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		Role:         string(entity.Role()),
		ClientID:     entity.ClientID(),
		IsActive:     entity.IsActive(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}
