package mappers

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rawad-inc/rawad/internal/domain/user"
	vo "github.com/rawad-inc/rawad/internal/domain/user/valueobjects"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:         u.ID(),
		PublicID:   u.PublicID().String(),
		Username:   u.Username(),
		Email:      u.Email(),
		FirstName:  u.FirstName(),
		LastName:   u.LastName(),
		Role:       u.Role().String(),
		IsVerified: u.IsVerified(),
		IsActive:   u.IsActive(),
		CreatedAt:  u.CreatedAt().UnixMilli(),
		UpdatedAt:  u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	publicID, err := uuid.Parse(model.PublicID)
	if err != nil {
		return nil, fmt.Errorf("invalid user public ID (id=%d): %w", model.ID, err)
	}

	role, err := vo.NewRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("invalid user role (id=%d): %w", model.ID, err)
	}

	return user.ReconstructUser(
		model.ID,
		publicID,
		model.Username,
		model.Email,
		model.FirstName,
		model.LastName,
		role,
		model.IsVerified,
		model.IsActive,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
