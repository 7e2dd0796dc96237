package usecases

import (
	"context"
	"math"

	issuedto "tracker/internal/application/issue/dto"
	"tracker/internal/domain/issue"
	"tracker/internal/domain/user"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

type LatencyReportRow struct {
	AssigneeID           uint              `json:"assignee_id"`
	Assignee             *issuedto.UserDTO `json:"assignee,omitempty"`
	AverageResolutionHrs float64           `json:"average_resolution_hours"`
	ResolvedCount        int64             `json:"resolved_count"`
}

// ResolutionLatencyUseCase reports the average hours from creation to
// resolution per assignee, fastest first. Issues missing either
// timestamp are excluded from the average entirely.
type ResolutionLatencyUseCase struct {
	issueRepo issue.IssueRepository
	userRepo  user.UserRepository
	logger    logger.Interface
}

func NewResolutionLatencyUseCase(
	issueRepo issue.IssueRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ResolutionLatencyUseCase {
	return &ResolutionLatencyUseCase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *ResolutionLatencyUseCase) Execute(ctx context.Context) ([]LatencyReportRow, error) {
	latencies, err := uc.issueRepo.AvgResolutionHoursByAssignee(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]LatencyReportRow, 0, len(latencies))
	for _, l := range latencies {
		row := LatencyReportRow{
			AssigneeID:           l.AssigneeID,
			AverageResolutionHrs: math.Round(l.AvgHours*100) / 100,
			ResolvedCount:        l.ResolvedCount,
		}
		u, err := uc.userRepo.GetByID(ctx, l.AssigneeID)
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
