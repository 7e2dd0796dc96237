package usecases

import (
	"context"

	issuedto "tracker/internal/application/issue/dto"
	"tracker/internal/domain/user"
	"tracker/internal/shared/logger"
)

type ListUsersQuery struct {
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users []issuedto.UserDTO
	Total int64
}

type ListUsersUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.UserRepository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	users, total, err := uc.userRepo.List(ctx, query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}

	dtos := make([]issuedto.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, issuedto.FromUser(u))
	}
	return &ListUsersResult{Users: dtos, Total: total}, nil
}
