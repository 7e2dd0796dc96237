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

type CreateIssueCommand struct {
	Title       string
	Description string
	Status      string
	Priority    string
	AssigneeID  *uint
}

// CreateIssueUseCase creates a new issue. Fresh issues always start at
// version 1 with a null resolved timestamp.
type CreateIssueUseCase struct {
	issueRepo issue.IssueRepository
	userRepo  user.UserRepository
	txManager db.TxManager
	logger    logger.Interface
}

func NewCreateIssueUseCase(
	issueRepo issue.IssueRepository,
	userRepo user.UserRepository,
	txManager db.TxManager,
	logger logger.Interface,
) *CreateIssueUseCase {
	return &CreateIssueUseCase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *CreateIssueUseCase) Execute(ctx context.Context, cmd CreateIssueCommand) (*dto.IssueDTO, error) {
	status, err := vo.ParseStatusOrDefault(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.ParsePriorityOrDefault(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newIssue, err := issue.NewIssue(cmd.Title, cmd.Description, status, priority, cmd.AssigneeID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var result *dto.IssueDTO
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if cmd.AssigneeID != nil {
			exists, err := uc.userRepo.Exists(txCtx, *cmd.AssigneeID)
			if err != nil {
				return err
			}
			if !exists {
				return errors.NewValidationError("assignee does not exist")
			}
		}

		if err := uc.issueRepo.Save(txCtx, newIssue); err != nil {
			return err
		}

		result = dto.FromIssue(newIssue)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("issue created", "issue_id", result.ID, "title", result.Title)
	return result, nil
}
