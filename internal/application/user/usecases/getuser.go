package usecases

import (
	"context"

	issuedto "tracker/internal/application/issue/dto"
	"tracker/internal/domain/user"
	"tracker/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.UserRepository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, userID uint) (*issuedto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := issuedto.FromUser(u)
	return &result, nil
}
