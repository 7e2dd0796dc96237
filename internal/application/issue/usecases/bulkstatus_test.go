package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/internal/domain/issue"
	vo "tracker/internal/domain/issue/valueobjects"
	"tracker/internal/shared/errors"
)

func TestBulkUpdateStatusUseCase_Execute_Success(t *testing.T) {
	issues := []*issue.Issue{
		reconstructTestIssue(t, 1, 1, vo.StatusOpen),
		reconstructTestIssue(t, 2, 2, vo.StatusInProgress),
		reconstructTestIssue(t, 3, 1, vo.StatusOpen),
	}

	var updates []uint
	mockRepo := &mockIssueRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*issue.Issue, error) {
			return issues, nil
		},
		UpdateFunc: func(ctx context.Context, i *issue.Issue) error {
			updates = append(updates, i.ID())
			return nil
		},
	}

	useCase := NewBulkUpdateStatusUseCase(mockRepo, &mockTxManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), BulkUpdateStatusCommand{
		IssueIDs: []uint{1, 2, 3},
		Status:   "resolved",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.UpdatedCount)
	assert.Equal(t, "resolved", result.Status)
	assert.Equal(t, []uint{1, 2, 3}, updates)

	for _, i := range issues {
		assert.Equal(t, vo.StatusResolved, i.Status())
		assert.NotNil(t, i.ResolvedAt())
	}
	// Each issue advanced by exactly one version.
	assert.Equal(t, 2, issues[0].Version())
	assert.Equal(t, 3, issues[1].Version())
}

func TestBulkUpdateStatusUseCase_Execute_MissingIDFailsWhole(t *testing.T) {
	issues := []*issue.Issue{
		reconstructTestIssue(t, 1, 1, vo.StatusOpen),
		reconstructTestIssue(t, 2, 1, vo.StatusOpen),
	}

	updateCalled := false
	mockRepo := &mockIssueRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*issue.Issue, error) {
			// id 99 does not exist, only two issues come back.
			return issues, nil
		},
		UpdateFunc: func(ctx context.Context, i *issue.Issue) error {
			updateCalled = true
			return nil
		},
	}

	useCase := NewBulkUpdateStatusUseCase(mockRepo, &mockTxManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), BulkUpdateStatusCommand{
		IssueIDs: []uint{1, 2, 99},
		Status:   "closed",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
	assert.False(t, updateCalled)

	// Nothing was mutated, not even the issues that do exist.
	assert.Equal(t, vo.StatusOpen, issues[0].Status())
	assert.Equal(t, 1, issues[0].Version())
	assert.Equal(t, vo.StatusOpen, issues[1].Status())
	assert.Equal(t, 1, issues[1].Version())
}

func TestBulkUpdateStatusUseCase_Execute_InvalidStatus(t *testing.T) {
	getCalled := false
	mockRepo := &mockIssueRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*issue.Issue, error) {
			getCalled = true
			return nil, nil
		},
	}

	useCase := NewBulkUpdateStatusUseCase(mockRepo, &mockTxManager{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), BulkUpdateStatusCommand{
		IssueIDs: []uint{1},
		Status:   "done",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, getCalled)
}

func TestBulkUpdateStatusUseCase_Execute_EmptyIDs(t *testing.T) {
	useCase := NewBulkUpdateStatusUseCase(&mockIssueRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), BulkUpdateStatusCommand{
		IssueIDs: nil,
		Status:   "open",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
