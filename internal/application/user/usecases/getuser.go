package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/application/user/dto"
	"github.com/rawad-inc/rawad/internal/domain/user"
	"github.com/rawad-inc/rawad/internal/shared/errors"
)

type GetUserQuery struct {
	UserID uint
}

type GetUserUseCase struct {
	userRepo user.Repository
}

func NewGetUserUseCase(userRepo user.Repository) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return &dto.UserDTO{
		ID:         u.ID(),
		PublicID:   u.PublicID().String(),
		Username:   u.Username(),
		Email:      u.Email(),
		FirstName:  u.FirstName(),
		LastName:   u.LastName(),
		Role:       u.Role().String(),
		IsVerified: u.IsVerified(),
		IsActive:   u.IsActive(),
		CreatedAt:  u.CreatedAt(),
	}, nil
}
