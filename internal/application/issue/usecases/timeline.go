package usecases

import (
	"context"
	"sort"
	"time"

	"tracker/internal/domain/issue"
	"tracker/internal/shared/db"
	"tracker/internal/shared/logger"
)

type GetTimelineQuery struct {
	IssueID uint
}

// TimelineEvent is one synthesized entry in an issue's history.
type TimelineEvent struct {
	EventType string         `json:"event_type"`
	Timestamp time.Time      `json:"timestamp"`
	Details   map[string]any `json:"details"`
}

const (
	EventCreated       = "created"
	EventUpdated       = "updated"
	EventCommentAdded  = "comment_added"
	EventLabelAdded    = "label_added"
	EventStatusChanged = "status_changed"
)

// GetTimelineUseCase reconstructs a best-effort chronological history
// from current snapshot state; no event log exists in the data model.
// Comment timestamps are the only causally accurate sub-events. The
// single updated event cannot say which fields changed or how many edits
// happened, label events borrow the issue's updated_at because exact
// association times are not retained, removed labels leave no trace, and
// assignee history is unrecoverable. These losses are inherent to a
// snapshot-only model, not defects to repair here.
type GetTimelineUseCase struct {
	issueRepo issue.IssueRepository
	txManager db.TxManager
	logger    logger.Interface
}

func NewGetTimelineUseCase(
	issueRepo issue.IssueRepository,
	txManager db.TxManager,
	logger logger.Interface,
) *GetTimelineUseCase {
	return &GetTimelineUseCase{
		issueRepo: issueRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *GetTimelineUseCase) Execute(ctx context.Context, query GetTimelineQuery) ([]TimelineEvent, error) {
	var timeline []TimelineEvent

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.issueRepo.GetByID(txCtx, query.IssueID)
		if err != nil {
			return err
		}

		timeline = uc.assemble(existing)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Stable sort: equal timestamps keep assembly order. That tie order
	// is implementation-defined, not semantically meaningful.
	sort.SliceStable(timeline, func(a, b int) bool {
		return timeline[a].Timestamp.Before(timeline[b].Timestamp)
	})

	return timeline, nil
}

func (uc *GetTimelineUseCase) assemble(i *issue.Issue) []TimelineEvent {
	timeline := []TimelineEvent{
		{
			EventType: EventCreated,
			Timestamp: i.CreatedAt(),
			Details: map[string]any{
				"title":    i.Title(),
				"status":   i.Status().String(),
				"priority": i.Priority().String(),
				// Current assignee, not the assignee at creation time:
				// assignee history is not retained.
				"assignee_id": i.AssigneeID(),
			},
		},
	}

	if i.UpdatedAt().After(i.CreatedAt()) {
		timeline = append(timeline, TimelineEvent{
			EventType: EventUpdated,
			Timestamp: i.UpdatedAt(),
			Details: map[string]any{
				"current_status": i.Status().String(),
				"note":           "status or other fields updated",
			},
		})
	}

	for _, c := range i.Comments() {
		body := c.Body()
		// Truncate on rune boundaries so multibyte text stays valid UTF-8.
		if runes := []rune(body); len(runes) > 100 {
			body = string(runes[:100]) + "..."
		}
		timeline = append(timeline, TimelineEvent{
			EventType: EventCommentAdded,
			Timestamp: c.CreatedAt(),
			Details: map[string]any{
				"comment_id": c.ID(),
				"author_id":  c.AuthorID(),
				"body":       body,
			},
		})
	}

	for _, l := range i.Labels() {
		timeline = append(timeline, TimelineEvent{
			EventType: EventLabelAdded,
			// Approximate: the association time is not retained, and
			// removed labels produce no event at all.
			Timestamp: i.UpdatedAt(),
			Details: map[string]any{
				"label_id":   l.ID(),
				"label_name": l.Name(),
			},
		})
	}

	if i.ResolvedAt() != nil {
		timeline = append(timeline, TimelineEvent{
			EventType: EventStatusChanged,
			Timestamp: *i.ResolvedAt(),
			Details: map[string]any{
				"status": "resolved",
				"note":   "issue marked as resolved",
			},
		})
	}

	return timeline
}
