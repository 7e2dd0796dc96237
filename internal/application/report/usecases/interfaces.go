package usecases

import "context"

type TopAssigneesExecutor interface {
	Execute(ctx context.Context, query TopAssigneesQuery) ([]TopAssigneeRow, error)
}

type ResolutionLatencyExecutor interface {
	Execute(ctx context.Context) ([]LatencyReportRow, error)
}
