package usecases

import (
	"context"
	"fmt"

	"tracker/internal/domain/issue"
	vo "tracker/internal/domain/issue/valueobjects"
	"tracker/internal/shared/db"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

type BulkUpdateStatusCommand struct {
	IssueIDs []uint
	Status   string
}

type BulkUpdateStatusResult struct {
	UpdatedCount int    `json:"updated_count"`
	IssueIDs     []uint `json:"issue_ids"`
	Status       string `json:"status"`
}

// BulkUpdateStatusUseCase transitions a set of issues to a new status.
// Strictly all-or-nothing: all ids are resolved first, and a single
// missing id fails the whole operation with zero issues mutated.
type BulkUpdateStatusUseCase struct {
	issueRepo issue.IssueRepository
	txManager db.TxManager
	logger    logger.Interface
}

func NewBulkUpdateStatusUseCase(
	issueRepo issue.IssueRepository,
	txManager db.TxManager,
	logger logger.Interface,
) *BulkUpdateStatusUseCase {
	return &BulkUpdateStatusUseCase{
		issueRepo: issueRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *BulkUpdateStatusUseCase) Execute(ctx context.Context, cmd BulkUpdateStatusCommand) (*BulkUpdateStatusResult, error) {
	if len(cmd.IssueIDs) == 0 {
		return nil, errors.NewValidationError("issue IDs are required")
	}

	newStatus, err := vo.ParseStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var updated int
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		issues, err := uc.issueRepo.GetByIDs(txCtx, cmd.IssueIDs)
		if err != nil {
			return err
		}

		if len(issues) != len(cmd.IssueIDs) {
			return errors.NewNotFoundError(
				"one or more issue IDs not found",
				fmt.Sprintf("requested %d issues, found %d", len(cmd.IssueIDs), len(issues)),
			)
		}

		for _, i := range issues {
			if err := i.ChangeStatus(newStatus); err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.issueRepo.Update(txCtx, i); err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("bulk status update applied", "count", updated, "status", newStatus.String())
	return &BulkUpdateStatusResult{
		UpdatedCount: updated,
		IssueIDs:     cmd.IssueIDs,
		Status:       newStatus.String(),
	}, nil
}
