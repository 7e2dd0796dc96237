package usecases

import (
	"context"

	"tracker/internal/application/issue/dto"
)

type CreateIssueExecutor interface {
	Execute(ctx context.Context, cmd CreateIssueCommand) (*dto.IssueDTO, error)
}

type GetIssueExecutor interface {
	Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDTO, error)
}

type ListIssuesExecutor interface {
	Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error)
}

type UpdateIssueExecutor interface {
	Execute(ctx context.Context, cmd UpdateIssueCommand) (*dto.IssueDTO, error)
}

type DeleteIssueExecutor interface {
	Execute(ctx context.Context, cmd DeleteIssueCommand) error
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type ReplaceLabelsExecutor interface {
	Execute(ctx context.Context, cmd ReplaceLabelsCommand) (*dto.IssueDTO, error)
}

type BulkUpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd BulkUpdateStatusCommand) (*BulkUpdateStatusResult, error)
}

type ImportIssuesExecutor interface {
	Execute(ctx context.Context, cmd ImportIssuesCommand) (*ImportIssuesResult, error)
}

type GetTimelineExecutor interface {
	Execute(ctx context.Context, query GetTimelineQuery) ([]TimelineEvent, error)
}
