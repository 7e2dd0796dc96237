package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/internal/domain/issue"
	vo "tracker/internal/domain/issue/valueobjects"
	"tracker/internal/domain/user"
	"tracker/internal/infrastructure/persistence/models"
	apperrors "tracker/internal/shared/errors"
)

func createTestUser(t *testing.T, username, email string) *user.User {
	t.Helper()
	u, err := user.NewUser(username, email, nil)
	require.NoError(t, err)
	return u
}

func TestUserRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("save and read back", func(t *testing.T) {
		u := createTestUser(t, "alice", "alice@example.com")
		require.NoError(t, repo.Save(ctx, u))
		assert.NotZero(t, u.ID())

		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, "alice", found.Username())

		byName, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, u.ID(), byName.ID())
	})

	t.Run("duplicate username is a conflict", func(t *testing.T) {
		dup := createTestUser(t, "alice", "other@example.com")
		err := repo.Save(ctx, dup)
		require.Error(t, err)
		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	})
}

func TestUserRepository_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, "bob", "bob@example.com")
	require.NoError(t, repo.Save(ctx, u))

	exists, err := repo.Exists(ctx, u.ID())
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	issueRepo := NewIssueRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	u := createTestUser(t, "carol", "carol@example.com")
	require.NoError(t, repo.Save(ctx, u))

	assigneeID := u.ID()
	assigned, err := issue.NewIssue("Assigned to carol", "", vo.StatusOpen, vo.PriorityMedium, &assigneeID)
	require.NoError(t, err)
	require.NoError(t, issueRepo.Save(ctx, assigned))

	c, err := issue.NewComment(assigned.ID(), u.ID(), "my own comment")
	require.NoError(t, err)
	require.NoError(t, commentRepo.Save(ctx, c))

	require.NoError(t, repo.Delete(ctx, u.ID()))

	// The issue survives with its assignee cleared.
	found, err := issueRepo.GetByID(ctx, assigned.ID())
	require.NoError(t, err)
	assert.Nil(t, found.AssigneeID())

	// Authored comments are gone.
	var commentCount int64
	db.Model(&models.CommentModel{}).Where("author_id = ?", u.ID()).Count(&commentCount)
	assert.Zero(t, commentCount)

	err = repo.Delete(ctx, u.ID())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUserRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, name := range []string{"u1", "u2", "u3"} {
		require.NoError(t, repo.Save(ctx, createTestUser(t, name, name+"@example.com")))
	}

	users, total, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].Username())
}
