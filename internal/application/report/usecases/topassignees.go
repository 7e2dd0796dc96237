package usecases

import (
	"context"

	issuedto "tracker/internal/application/issue/dto"
	"tracker/internal/domain/issue"
	"tracker/internal/domain/user"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

type TopAssigneesQuery struct {
	Limit int
}

type TopAssigneeRow struct {
	AssigneeID    uint              `json:"assignee_id"`
	Assignee      *issuedto.UserDTO `json:"assignee,omitempty"`
	ResolvedCount int64             `json:"resolved_count"`
}

// TopAssigneesUseCase ranks assignees by resolved issue count,
// descending. Ties are broken by store-defined order.
type TopAssigneesUseCase struct {
	issueRepo issue.IssueRepository
	userRepo  user.UserRepository
	logger    logger.Interface
}

func NewTopAssigneesUseCase(
	issueRepo issue.IssueRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *TopAssigneesUseCase {
	return &TopAssigneesUseCase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *TopAssigneesUseCase) Execute(ctx context.Context, query TopAssigneesQuery) ([]TopAssigneeRow, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}

	counts, err := uc.issueRepo.CountResolvedByAssignee(ctx, limit)
	if err != nil {
		return nil, err
	}

	rows := make([]TopAssigneeRow, 0, len(counts))
	for _, c := range counts {
		row := TopAssigneeRow{
			AssigneeID:    c.AssigneeID,
			ResolvedCount: c.ResolvedCount,
		}
		u, err := uc.userRepo.GetByID(ctx, c.AssigneeID)
		if err != nil && !errors.IsNotFoundError(err) {
			return nil, err
		}
		if u != nil {
			userDTO := issuedto.FromUser(u)
			row.Assignee = &userDTO
		}
		rows = append(rows, row)
	}

	return rows, nil
}
