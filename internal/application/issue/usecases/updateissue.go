package usecases

import (
	"context"

	"tracker/internal/application/issue/dto"
	"tracker/internal/domain/issue"
	vo "tracker/internal/domain/issue/valueobjects"
	"tracker/internal/domain/user"
	"tracker/internal/shared/db"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

type UpdateIssueCommand struct {
	IssueID         uint
	ExpectedVersion int
	Title           *string
	Description     *string
	Status          *string
	Priority        *string
	AssigneeID      *uint
}

// UpdateIssueUseCase applies a partial update under optimistic
// concurrency control: the caller supplies the version it read, and the
// update only proceeds when that version is still current. The read runs
// under a row lock so that the compare-and-swap on the version column
// cannot race a concurrent writer between read and write.
type UpdateIssueUseCase struct {
	issueRepo issue.IssueRepository
	userRepo  user.UserRepository
	txManager db.TxManager
	logger    logger.Interface
}

func NewUpdateIssueUseCase(
	issueRepo issue.IssueRepository,
	userRepo user.UserRepository,
	txManager db.TxManager,
	logger logger.Interface,
) *UpdateIssueUseCase {
	return &UpdateIssueUseCase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *UpdateIssueUseCase) Execute(ctx context.Context, cmd UpdateIssueCommand) (*dto.IssueDTO, error) {
	patch, err := uc.buildPatch(cmd)
	if err != nil {
		uc.logger.Warnw("invalid update issue command", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	var result *dto.IssueDTO
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.issueRepo.GetByIDForUpdate(txCtx, cmd.IssueID)
		if err != nil {
			return err
		}

		if existing.Version() != cmd.ExpectedVersion {
			return errors.NewVersionConflictError(cmd.ExpectedVersion, existing.Version())
		}

		if patch.AssigneeID != nil {
			exists, err := uc.userRepo.Exists(txCtx, *patch.AssigneeID)
			if err != nil {
				return err
			}
			if !exists {
				return errors.NewValidationError("assignee does not exist")
			}
		}

		if err := existing.ApplyPatch(*patch); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.issueRepo.Update(txCtx, existing); err != nil {
			return err
		}

		result = dto.FromIssue(existing)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("issue updated", "issue_id", cmd.IssueID, "version", result.Version)
	return result, nil
}

func (uc *UpdateIssueUseCase) buildPatch(cmd UpdateIssueCommand) (*issue.Patch, error) {
	if cmd.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}
	if cmd.ExpectedVersion < 1 {
		return nil, errors.NewValidationError("expected version must be positive")
	}

	patch := &issue.Patch{
		Title:       cmd.Title,
		Description: cmd.Description,
		AssigneeID:  cmd.AssigneeID,
	}

	if cmd.Status != nil {
		status, err := vo.ParseStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		patch.Status = &status
	}
	if cmd.Priority != nil {
		priority, err := vo.ParsePriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		patch.Priority = &priority
	}

	return patch, nil
}
