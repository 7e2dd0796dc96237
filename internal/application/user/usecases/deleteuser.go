package usecases

import (
	"context"

	"tracker/internal/domain/user"
	"tracker/internal/shared/db"
	"tracker/internal/shared/logger"
)

// DeleteUserUseCase removes a user. Issues assigned to the user keep
// existing with their assignee cleared; comments the user authored are
// removed alongside.
type DeleteUserUseCase struct {
	userRepo  user.UserRepository
	txManager db.TxManager
	logger    logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.UserRepository,
	txManager db.TxManager,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, userID uint) error {
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.userRepo.GetByID(txCtx, userID); err != nil {
			return err
		}
		return uc.userRepo.Delete(txCtx, userID)
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("user deleted", "user_id", userID)
	return nil
}
