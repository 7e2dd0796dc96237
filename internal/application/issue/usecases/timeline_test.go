package usecases

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/internal/domain/issue"
	vo "tracker/internal/domain/issue/valueobjects"
	"tracker/internal/shared/errors"
)

func TestGetTimelineUseCase_Execute_FullHistory(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)
	resolvedAt := created.Add(24 * time.Hour)

	existing, err := issue.ReconstructIssue(1, "Tracked issue", "desc", vo.StatusResolved, vo.PriorityHigh, 3, nil, created, updated, &resolvedAt)
	require.NoError(t, err)

	comment, err := issue.ReconstructComment(5, 1, 2, "investigating", created.Add(time.Hour), created.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, existing.AttachComment(comment))
	existing.SetLabels([]*issue.Label{reconstructTestLabel(t, 7, "bug")})

	mockRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return existing, nil
		},
	}

	useCase := NewGetTimelineUseCase(mockRepo, &mockTxManager{}, &mockLogger{})

	events, err := useCase.Execute(context.Background(), GetTimelineQuery{IssueID: 1})
	require.NoError(t, err)
	require.Len(t, events, 5)

	// Ascending order, created first.
	assert.Equal(t, EventCreated, events[0].EventType)
	assert.True(t, sort.SliceIsSorted(events, func(a, b int) bool {
		return events[a].Timestamp.Before(events[b].Timestamp)
	}))

	types := make(map[string]int)
	for _, e := range events {
		types[e.EventType]++
	}
	assert.Equal(t, 1, types[EventCreated])
	assert.Equal(t, 1, types[EventUpdated])
	assert.Equal(t, 1, types[EventCommentAdded])
	assert.Equal(t, 1, types[EventLabelAdded])
	assert.Equal(t, 1, types[EventStatusChanged])

	// The comment sits at its true timestamp, between created and resolved.
	assert.Equal(t, EventCommentAdded, events[1].EventType)
	assert.Equal(t, EventStatusChanged, events[2].EventType)
}

func TestGetTimelineUseCase_Execute_FreshIssueHasOnlyCreated(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	existing, err := issue.ReconstructIssue(1, "Fresh", "", vo.StatusOpen, vo.PriorityLow, 1, nil, now, now, nil)
	require.NoError(t, err)

	mockRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return existing, nil
		},
	}

	useCase := NewGetTimelineUseCase(mockRepo, &mockTxManager{}, &mockLogger{})

	events, err := useCase.Execute(context.Background(), GetTimelineQuery{IssueID: 1})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventCreated, events[0].EventType)
	assert.Equal(t, now, events[0].Timestamp)
}

func TestGetTimelineUseCase_Execute_LongCommentTruncated(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	existing, err := issue.ReconstructIssue(1, "Chatty", "", vo.StatusOpen, vo.PriorityLow, 1, nil, now, now, nil)
	require.NoError(t, err)

	longBody := strings.Repeat("x", 250)
	comment, err := issue.ReconstructComment(2, 1, 3, longBody, now.Add(time.Minute), now.Add(time.Minute))
	require.NoError(t, err)
	require.NoError(t, existing.AttachComment(comment))

	mockRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return existing, nil
		},
	}

	useCase := NewGetTimelineUseCase(mockRepo, &mockTxManager{}, &mockLogger{})

	events, err := useCase.Execute(context.Background(), GetTimelineQuery{IssueID: 1})
	require.NoError(t, err)
	require.Len(t, events, 2)

	body, ok := events[1].Details["body"].(string)
	require.True(t, ok)
	assert.Len(t, body, 103)
	assert.True(t, strings.HasSuffix(body, "..."))
}

func TestGetTimelineUseCase_Execute_MultibyteCommentTruncated(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	existing, err := issue.ReconstructIssue(1, "Multilingual", "", vo.StatusOpen, vo.PriorityLow, 1, nil, now, now, nil)
	require.NoError(t, err)

	// 120 three-byte runes: a byte-indexed cut at 100 would land mid-rune.
	longBody := strings.Repeat("日", 120)
	comment, err := issue.ReconstructComment(2, 1, 3, longBody, now.Add(time.Minute), now.Add(time.Minute))
	require.NoError(t, err)
	require.NoError(t, existing.AttachComment(comment))

	mockRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return existing, nil
		},
	}

	useCase := NewGetTimelineUseCase(mockRepo, &mockTxManager{}, &mockLogger{})

	events, err := useCase.Execute(context.Background(), GetTimelineQuery{IssueID: 1})
	require.NoError(t, err)
	require.Len(t, events, 2)

	body, ok := events[1].Details["body"].(string)
	require.True(t, ok)
	assert.True(t, utf8.ValidString(body))
	assert.Equal(t, strings.Repeat("日", 100)+"...", body)
	assert.Equal(t, 103, utf8.RuneCountInString(body))
}

func TestGetTimelineUseCase_Execute_MissingIssue(t *testing.T) {
	mockRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return nil, errors.NewNotFoundError("issue not found")
		},
	}

	useCase := NewGetTimelineUseCase(mockRepo, &mockTxManager{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), GetTimelineQuery{IssueID: 404})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
