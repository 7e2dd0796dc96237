package usecases

import (
	"context"

	"tracker/internal/domain/issue"
	"tracker/internal/shared/db"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

type DeleteIssueCommand struct {
	IssueID uint
}

// DeleteIssueUseCase physically deletes an issue. Its comments and label
// associations cascade away with it; labels themselves survive.
type DeleteIssueUseCase struct {
	issueRepo issue.IssueRepository
	txManager db.TxManager
	logger    logger.Interface
}

func NewDeleteIssueUseCase(
	issueRepo issue.IssueRepository,
	txManager db.TxManager,
	logger logger.Interface,
) *DeleteIssueUseCase {
	return &DeleteIssueUseCase{
		issueRepo: issueRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *DeleteIssueUseCase) Execute(ctx context.Context, cmd DeleteIssueCommand) error {
	if cmd.IssueID == 0 {
		return errors.NewValidationError("issue ID is required")
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.issueRepo.Delete(txCtx, cmd.IssueID)
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("issue deleted", "issue_id", cmd.IssueID)
	return nil
}
