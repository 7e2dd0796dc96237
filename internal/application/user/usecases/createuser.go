package usecases

import (
	"context"

	issuedto "tracker/internal/application/issue/dto"
	"tracker/internal/domain/user"
	"tracker/internal/shared/db"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

type CreateUserCommand struct {
	Username string
	Email    string
	FullName *string
}

type CreateUserUseCase struct {
	userRepo  user.UserRepository
	txManager db.TxManager
	logger    logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.UserRepository,
	txManager db.TxManager,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*issuedto.UserDTO, error) {
	newUser, err := user.NewUser(cmd.Username, cmd.Email, cmd.FullName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.userRepo.Save(txCtx, newUser)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", newUser.ID(), "username", newUser.Username())
	result := issuedto.FromUser(newUser)
	return &result, nil
}
