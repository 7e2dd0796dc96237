package usecases

import (
	"context"

	"tracker/internal/application/issue/dto"
	"tracker/internal/domain/issue"
	vo "tracker/internal/domain/issue/valueobjects"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

type ListIssuesQuery struct {
	Page       int
	PageSize   int
	Status     *string
	Priority   *string
	AssigneeID *uint
}

type ListIssuesResult struct {
	Issues []*dto.IssueDTO
	Total  int64
}

type ListIssuesUseCase struct {
	issueRepo issue.IssueRepository
	logger    logger.Interface
}

func NewListIssuesUseCase(issueRepo issue.IssueRepository, logger logger.Interface) *ListIssuesUseCase {
	return &ListIssuesUseCase{
		issueRepo: issueRepo,
		logger:    logger,
	}
}

func (uc *ListIssuesUseCase) Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error) {
	filter := issue.Filter{
		AssigneeID: query.AssigneeID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}

	if query.Status != nil {
		status, err := vo.ParseStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != nil {
		priority, err := vo.ParsePriority(*query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	issues, total, err := uc.issueRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]*dto.IssueDTO, len(issues))
	for idx, i := range issues {
		dtos[idx] = dto.FromIssue(i)
	}

	return &ListIssuesResult{Issues: dtos, Total: total}, nil
}
