package issue

import (
	"context"

	vo "tracker/internal/domain/issue/valueobjects"
)

// IssueRepository is the seam between the use cases and the storage
// engine. Implementations must honor the transaction handle carried in
// the context so every read that informs a decision happens in the same
// transaction as the subsequent write.
type IssueRepository interface {
	Save(ctx context.Context, i *Issue) error
	Update(ctx context.Context, i *Issue) error
	Delete(ctx context.Context, issueID uint) error
	GetByID(ctx context.Context, issueID uint) (*Issue, error)
	// GetByIDForUpdate reads the issue under a row lock (SELECT ... FOR
	// UPDATE). The optimistic version check is a manual compare-and-swap
	// and is only correct when the read-then-write span is protected by
	// a row lock or by storage-level write-conflict detection.
	GetByIDForUpdate(ctx context.Context, issueID uint) (*Issue, error)
	GetByIDs(ctx context.Context, issueIDs []uint) ([]*Issue, error)
	List(ctx context.Context, filter Filter) ([]*Issue, int64, error)

	// CountResolvedByAssignee groups resolved issues by assignee and
	// counts them, descending, truncated to limit.
	CountResolvedByAssignee(ctx context.Context, limit int) ([]AssigneeCount, error)
	// AvgResolutionHoursByAssignee averages the hours between created_at
	// and resolved_at per assignee over resolved issues carrying both
	// timestamps, ascending by average.
	AvgResolutionHoursByAssignee(ctx context.Context) ([]AssigneeLatency, error)
}

// Filter selects and paginates issues for listing.
type Filter struct {
	Status     *vo.Status
	Priority   *vo.Priority
	AssigneeID *uint
	Page       int
	PageSize   int
}

// AssigneeCount is one row of the top-assignees aggregate.
type AssigneeCount struct {
	AssigneeID    uint
	ResolvedCount int64
}

// AssigneeLatency is one row of the resolution-latency aggregate.
type AssigneeLatency struct {
	AssigneeID    uint
	AvgHours      float64
	ResolvedCount int64
}

type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	GetByIssueID(ctx context.Context, issueID uint) ([]*Comment, error)
	Delete(ctx context.Context, commentID uint) error
}

// LabelRepository exposes the upsert-by-unique-key primitive and the
// association set replacement the consistency engine builds on.
type LabelRepository interface {
	GetByName(ctx context.Context, name string) (*Label, error)
	// GetOrCreateByName is the idempotent upsert: repeated calls with the
	// same name never create duplicates.
	GetOrCreateByName(ctx context.Context, name string) (*Label, error)
	GetByIssueID(ctx context.Context, issueID uint) ([]*Label, error)
	// ReplaceIssueLabels clears the issue's entire association set and
	// inserts exactly the given label IDs.
	ReplaceIssueLabels(ctx context.Context, issueID uint, labelIDs []uint) error
	Delete(ctx context.Context, labelID uint) error
}
