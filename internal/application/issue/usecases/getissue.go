package usecases

import (
	"context"

	"tracker/internal/application/issue/dto"
	"tracker/internal/domain/issue"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

type GetIssueQuery struct {
	IssueID uint
}

type GetIssueUseCase struct {
	issueRepo issue.IssueRepository
	logger    logger.Interface
}

func NewGetIssueUseCase(issueRepo issue.IssueRepository, logger logger.Interface) *GetIssueUseCase {
	return &GetIssueUseCase{
		issueRepo: issueRepo,
		logger:    logger,
	}
}

func (uc *GetIssueUseCase) Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDTO, error) {
	if query.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}

	existing, err := uc.issueRepo.GetByID(ctx, query.IssueID)
	if err != nil {
		return nil, err
	}

	return dto.FromIssue(existing), nil
}
