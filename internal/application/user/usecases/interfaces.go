package usecases

import (
	"context"

	issuedto "tracker/internal/application/issue/dto"
)

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*issuedto.UserDTO, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, userID uint) (*issuedto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, userID uint) error
}
