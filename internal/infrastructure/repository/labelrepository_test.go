package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "tracker/internal/domain/issue/valueobjects"
	"tracker/internal/infrastructure/persistence/models"
	apperrors "tracker/internal/shared/errors"
)

func TestLabelRepository_GetOrCreateByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLabelRepository(db)
	ctx := context.Background()

	t.Run("creates on first call, reuses afterwards", func(t *testing.T) {
		first, err := repo.GetOrCreateByName(ctx, "bug")
		require.NoError(t, err)
		assert.NotZero(t, first.ID())

		second, err := repo.GetOrCreateByName(ctx, "bug")
		require.NoError(t, err)
		assert.Equal(t, first.ID(), second.ID())

		var count int64
		db.Model(&models.LabelModel{}).Where("name = ?", "bug").Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("missing label reads as nil without error", func(t *testing.T) {
		l, err := repo.GetByName(ctx, "nothere")
		require.NoError(t, err)
		assert.Nil(t, l)
	})
}

func TestLabelRepository_ReplaceIssueLabels(t *testing.T) {
	db := setupTestDB(t)
	issueRepo := NewIssueRepository(db)
	repo := NewLabelRepository(db)
	ctx := context.Background()

	i := createTestIssue(t, "Labeled issue", vo.StatusOpen, vo.PriorityMedium)
	require.NoError(t, issueRepo.Save(ctx, i))

	bug, err := repo.GetOrCreateByName(ctx, "bug")
	require.NoError(t, err)
	ui, err := repo.GetOrCreateByName(ctx, "ui")
	require.NoError(t, err)
	backend, err := repo.GetOrCreateByName(ctx, "backend")
	require.NoError(t, err)

	t.Run("replacement swaps the whole set", func(t *testing.T) {
		require.NoError(t, repo.ReplaceIssueLabels(ctx, i.ID(), []uint{bug.ID(), ui.ID()}))

		labels, err := repo.GetByIssueID(ctx, i.ID())
		require.NoError(t, err)
		require.Len(t, labels, 2)

		require.NoError(t, repo.ReplaceIssueLabels(ctx, i.ID(), []uint{backend.ID()}))

		labels, err = repo.GetByIssueID(ctx, i.ID())
		require.NoError(t, err)
		require.Len(t, labels, 1)
		assert.Equal(t, "backend", labels[0].Name())
	})

	t.Run("replacement with the same set is idempotent", func(t *testing.T) {
		require.NoError(t, repo.ReplaceIssueLabels(ctx, i.ID(), []uint{bug.ID()}))
		require.NoError(t, repo.ReplaceIssueLabels(ctx, i.ID(), []uint{bug.ID()}))

		var count int64
		db.Model(&models.IssueLabelModel{}).Where("issue_id = ?", i.ID()).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("empty set clears all associations", func(t *testing.T) {
		require.NoError(t, repo.ReplaceIssueLabels(ctx, i.ID(), nil))

		labels, err := repo.GetByIssueID(ctx, i.ID())
		require.NoError(t, err)
		assert.Empty(t, labels)
	})
}

func TestLabelRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	issueRepo := NewIssueRepository(db)
	repo := NewLabelRepository(db)
	ctx := context.Background()

	i := createTestIssue(t, "Has label", vo.StatusOpen, vo.PriorityLow)
	require.NoError(t, issueRepo.Save(ctx, i))

	label, err := repo.GetOrCreateByName(ctx, "transient")
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceIssueLabels(ctx, i.ID(), []uint{label.ID()}))

	require.NoError(t, repo.Delete(ctx, label.ID()))

	var assocCount int64
	db.Model(&models.IssueLabelModel{}).Where("label_id = ?", label.ID()).Count(&assocCount)
	assert.Zero(t, assocCount)

	err = repo.Delete(ctx, label.ID())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
