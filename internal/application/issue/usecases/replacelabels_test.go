package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/internal/domain/issue"
	vo "tracker/internal/domain/issue/valueobjects"
	"tracker/internal/shared/errors"
)

func reconstructTestLabel(t *testing.T, id uint, name string) *issue.Label {
	t.Helper()
	now := time.Now().UTC()
	l, err := issue.ReconstructLabel(id, name, nil, nil, now, now)
	require.NoError(t, err)
	return l
}

func TestReplaceLabelsUseCase_Execute_Success(t *testing.T) {
	existing := reconstructTestIssue(t, 1, 2, vo.StatusOpen)

	labels := map[string]*issue.Label{
		"bug":      reconstructTestLabel(t, 10, "bug"),
		"critical": reconstructTestLabel(t, 11, "critical"),
	}

	var replacedWith []uint
	mockIssues := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return existing, nil
		},
	}
	mockLabels := &mockLabelRepository{
		GetOrCreateByNameFunc: func(ctx context.Context, name string) (*issue.Label, error) {
			return labels[name], nil
		},
		ReplaceIssueLabelsFunc: func(ctx context.Context, issueID uint, labelIDs []uint) error {
			replacedWith = labelIDs
			return nil
		},
	}

	useCase := NewReplaceLabelsUseCase(mockIssues, mockLabels, &mockTxManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), ReplaceLabelsCommand{
		IssueID: 1,
		Names:   []string{"bug", "critical"},
	})

	require.NoError(t, err)
	assert.Equal(t, []uint{10, 11}, replacedWith)
	require.Len(t, result.Labels, 2)
	assert.Equal(t, "bug", result.Labels[0].Name)

	// Label replacement is unversioned.
	assert.Equal(t, 2, result.Version)
}

func TestReplaceLabelsUseCase_Execute_EmptySetClears(t *testing.T) {
	existing := reconstructTestIssue(t, 1, 1, vo.StatusOpen)
	existing.SetLabels([]*issue.Label{reconstructTestLabel(t, 10, "bug")})

	var replacedWith []uint
	replaceCalled := false
	mockIssues := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return existing, nil
		},
	}
	mockLabels := &mockLabelRepository{
		ReplaceIssueLabelsFunc: func(ctx context.Context, issueID uint, labelIDs []uint) error {
			replaceCalled = true
			replacedWith = labelIDs
			return nil
		},
	}

	useCase := NewReplaceLabelsUseCase(mockIssues, mockLabels, &mockTxManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), ReplaceLabelsCommand{IssueID: 1, Names: []string{}})

	require.NoError(t, err)
	assert.True(t, replaceCalled)
	assert.Empty(t, replacedWith)
	assert.Empty(t, result.Labels)
}

func TestReplaceLabelsUseCase_Execute_DuplicateNamesRejected(t *testing.T) {
	getCalled := false
	replaceCalled := false
	mockIssues := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			getCalled = true
			return reconstructTestIssue(t, 1, 1, vo.StatusOpen), nil
		},
	}
	mockLabels := &mockLabelRepository{
		ReplaceIssueLabelsFunc: func(ctx context.Context, issueID uint, labelIDs []uint) error {
			replaceCalled = true
			return nil
		},
	}

	useCase := NewReplaceLabelsUseCase(mockIssues, mockLabels, &mockTxManager{}, &mockLogger{})

	// A repeated name would resolve to the same label id twice and break
	// the association insert; it must fail validation before any read.
	_, err := useCase.Execute(context.Background(), ReplaceLabelsCommand{
		IssueID: 1,
		Names:   []string{"bug", "critical", "bug"},
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "duplicate label name")
	assert.False(t, getCalled)
	assert.False(t, replaceCalled)
}

func TestReplaceLabelsUseCase_Execute_MissingIssue(t *testing.T) {
	mockIssues := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return nil, errors.NewNotFoundError("issue not found")
		},
	}

	replaceCalled := false
	mockLabels := &mockLabelRepository{
		ReplaceIssueLabelsFunc: func(ctx context.Context, issueID uint, labelIDs []uint) error {
			replaceCalled = true
			return nil
		},
	}

	useCase := NewReplaceLabelsUseCase(mockIssues, mockLabels, &mockTxManager{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), ReplaceLabelsCommand{IssueID: 9, Names: []string{"bug"}})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.False(t, replaceCalled)
}
