package usecases

import (
	"context"

	"tracker/internal/domain/issue"
	"tracker/internal/domain/user"
	"tracker/internal/shared/logger"
)

type mockIssueRepository struct {
	SaveFunc                         func(ctx context.Context, i *issue.Issue) error
	UpdateFunc                       func(ctx context.Context, i *issue.Issue) error
	DeleteFunc                       func(ctx context.Context, issueID uint) error
	GetByIDFunc                      func(ctx context.Context, issueID uint) (*issue.Issue, error)
	GetByIDForUpdateFunc             func(ctx context.Context, issueID uint) (*issue.Issue, error)
	GetByIDsFunc                     func(ctx context.Context, issueIDs []uint) ([]*issue.Issue, error)
	ListFunc                         func(ctx context.Context, filter issue.Filter) ([]*issue.Issue, int64, error)
	CountResolvedByAssigneeFunc      func(ctx context.Context, limit int) ([]issue.AssigneeCount, error)
	AvgResolutionHoursByAssigneeFunc func(ctx context.Context) ([]issue.AssigneeLatency, error)
}

func (m *mockIssueRepository) Save(ctx context.Context, i *issue.Issue) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, i)
	}
	return nil
}

func (m *mockIssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockIssueRepository) Delete(ctx context.Context, issueID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, issueID)
	}
	return nil
}

func (m *mockIssueRepository) GetByID(ctx context.Context, issueID uint) (*issue.Issue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockIssueRepository) GetByIDForUpdate(ctx context.Context, issueID uint) (*issue.Issue, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockIssueRepository) GetByIDs(ctx context.Context, issueIDs []uint) ([]*issue.Issue, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, issueIDs)
	}
	return nil, nil
}

func (m *mockIssueRepository) List(ctx context.Context, filter issue.Filter) ([]*issue.Issue, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockIssueRepository) CountResolvedByAssignee(ctx context.Context, limit int) ([]issue.AssigneeCount, error) {
	if m.CountResolvedByAssigneeFunc != nil {
		return m.CountResolvedByAssigneeFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockIssueRepository) AvgResolutionHoursByAssignee(ctx context.Context) ([]issue.AssigneeLatency, error) {
	if m.AvgResolutionHoursByAssigneeFunc != nil {
		return m.AvgResolutionHoursByAssigneeFunc(ctx)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc         func(ctx context.Context, c *issue.Comment) error
	GetByIssueIDFunc func(ctx context.Context, issueID uint) ([]*issue.Comment, error)
	DeleteFunc       func(ctx context.Context, commentID uint) error
}

func (m *mockCommentRepository) Save(ctx context.Context, c *issue.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) GetByIssueID(ctx context.Context, issueID uint) ([]*issue.Comment, error) {
	if m.GetByIssueIDFunc != nil {
		return m.GetByIssueIDFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return nil
}

type mockLabelRepository struct {
	GetByNameFunc         func(ctx context.Context, name string) (*issue.Label, error)
	GetOrCreateByNameFunc func(ctx context.Context, name string) (*issue.Label, error)
	GetByIssueIDFunc      func(ctx context.Context, issueID uint) ([]*issue.Label, error)
	ReplaceIssueLabelsFunc func(ctx context.Context, issueID uint, labelIDs []uint) error
	DeleteFunc            func(ctx context.Context, labelID uint) error
}

func (m *mockLabelRepository) GetByName(ctx context.Context, name string) (*issue.Label, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockLabelRepository) GetOrCreateByName(ctx context.Context, name string) (*issue.Label, error) {
	if m.GetOrCreateByNameFunc != nil {
		return m.GetOrCreateByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockLabelRepository) GetByIssueID(ctx context.Context, issueID uint) ([]*issue.Label, error) {
	if m.GetByIssueIDFunc != nil {
		return m.GetByIssueIDFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockLabelRepository) ReplaceIssueLabels(ctx context.Context, issueID uint, labelIDs []uint) error {
	if m.ReplaceIssueLabelsFunc != nil {
		return m.ReplaceIssueLabelsFunc(ctx, issueID, labelIDs)
	}
	return nil
}

func (m *mockLabelRepository) Delete(ctx context.Context, labelID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, labelID)
	}
	return nil
}

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, userID uint) (*user.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
	ExistsFunc        func(ctx context.Context, userID uint) (bool, error)
	ListFunc          func(ctx context.Context, page, pageSize int) ([]*user.User, int64, error)
	DeleteFunc        func(ctx context.Context, userID uint) error
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) Exists(ctx context.Context, userID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, userID)
	}
	return true, nil
}

func (m *mockUserRepository) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

// mockTxManager runs the function inline without a database transaction.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                    {}
func (m *mockLogger) Info(msg string, args ...any)                     {}
func (m *mockLogger) Warn(msg string, args ...any)                     {}
func (m *mockLogger) Error(msg string, args ...any)                    {}
func (m *mockLogger) With(args ...any) logger.Interface                { return m }
func (m *mockLogger) Named(name string) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})  {}
