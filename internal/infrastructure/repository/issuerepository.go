package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tracker/internal/domain/issue"
	"tracker/internal/infrastructure/persistence/mappers"
	"tracker/internal/infrastructure/persistence/models"
	db "tracker/internal/shared/db"
	apperrors "tracker/internal/shared/errors"
)

type IssueRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewIssueRepository(database *gorm.DB) *IssueRepository {
	return &IssueRepository{
		db:     database,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *IssueRepository) Save(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save issue: %w", err)
	}

	return i.SetID(model.ID)
}

func (r *IssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") so that fields reset to zero values (a cleared
	// resolved_at in particular) are written, not skipped.
	result := tx.
		Model(&models.IssueModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update issue: %w", result.Error)
	}

	return nil
}

// Delete removes the issue and applies the explicit cascade rules:
// its comments and label associations go with it. Labels themselves are
// untouched, they have an independent lifecycle.
func (r *IssueRepository) Delete(ctx context.Context, issueID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("issue_id = ?", issueID).Delete(&models.CommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete issue comments: %w", err)
	}
	if err := tx.Where("issue_id = ?", issueID).Delete(&models.IssueLabelModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete issue label associations: %w", err)
	}

	result := tx.Delete(&models.IssueModel{}, issueID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete issue: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("issue not found")
	}
	return nil
}

func (r *IssueRepository) GetByID(ctx context.Context, issueID uint) (*issue.Issue, error) {
	return r.getByID(ctx, issueID, false)
}

// GetByIDForUpdate reads the issue row under SELECT ... FOR UPDATE. The
// manual compare-and-swap on the version column is only safe when the
// read-then-write span holds a row lock; under plain read committed two
// concurrent updates could both pass the version check.
func (r *IssueRepository) GetByIDForUpdate(ctx context.Context, issueID uint) (*issue.Issue, error) {
	return r.getByID(ctx, issueID, true)
}

func (r *IssueRepository) getByID(ctx context.Context, issueID uint, forUpdate bool) (*issue.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.IssueModel{})
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := query.First(&model, issueID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("issue not found")
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	i, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadLabels(ctx, i); err != nil {
		return nil, err
	}
	if err := r.loadComments(ctx, i); err != nil {
		return nil, err
	}

	return i, nil
}

func (r *IssueRepository) GetByIDs(ctx context.Context, issueIDs []uint) ([]*issue.Issue, error) {
	if len(issueIDs) == 0 {
		return []*issue.Issue{}, nil
	}

	var issueModels []models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", issueIDs).Find(&issueModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find issues: %w", err)
	}

	issues := make([]*issue.Issue, len(issueModels))
	for idx, model := range issueModels {
		i, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		issues[idx] = i
	}

	return issues, nil
}

func (r *IssueRepository) List(ctx context.Context, filter issue.Filter) ([]*issue.Issue, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.IssueModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count issues: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var issueModels []models.IssueModel
	if err := query.Find(&issueModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list issues: %w", err)
	}

	issues := make([]*issue.Issue, len(issueModels))
	for idx, model := range issueModels {
		i, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		issues[idx] = i
	}

	return issues, total, nil
}

func (r *IssueRepository) CountResolvedByAssignee(ctx context.Context, limit int) ([]issue.AssigneeCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []issue.AssigneeCount
	err := tx.Model(&models.IssueModel{}).
		Select("assignee_id, COUNT(id) AS resolved_count").
		Where("status = ? AND assignee_id IS NOT NULL", "resolved").
		Group("assignee_id").
		Order("resolved_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count resolved issues by assignee: %w", err)
	}

	return rows, nil
}

func (r *IssueRepository) AvgResolutionHoursByAssignee(ctx context.Context) ([]issue.AssigneeLatency, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	// Timestamps are stored as Unix milliseconds, so the hour delta is
	// plain arithmetic and the expression is portable across drivers.
	var rows []issue.AssigneeLatency
	err := tx.Model(&models.IssueModel{}).
		Select("assignee_id, AVG((resolved_at - created_at) / 3600000.0) AS avg_hours, COUNT(id) AS resolved_count").
		Where("status = ? AND assignee_id IS NOT NULL AND resolved_at IS NOT NULL", "resolved").
		Group("assignee_id").
		Order("avg_hours ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute resolution latency: %w", err)
	}

	return rows, nil
}

func (r *IssueRepository) loadLabels(ctx context.Context, i *issue.Issue) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var labelModels []models.LabelModel
	err := tx.Model(&models.LabelModel{}).
		Joins("JOIN issue_labels ON issue_labels.label_id = labels.id").
		Where("issue_labels.issue_id = ?", i.ID()).
		Order("labels.name ASC").
		Find(&labelModels).Error
	if err != nil {
		return fmt.Errorf("failed to load issue labels: %w", err)
	}

	labels := make([]*issue.Label, len(labelModels))
	for idx, model := range labelModels {
		l, err := r.mapper.LabelToDomain(&model)
		if err != nil {
			return err
		}
		labels[idx] = l
	}

	i.SetLabels(labels)
	return nil
}

func (r *IssueRepository) loadComments(ctx context.Context, i *issue.Issue) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var commentModels []models.CommentModel
	err := tx.
		Where("issue_id = ?", i.ID()).
		Order("created_at ASC").
		Find(&commentModels).Error
	if err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}

	for _, cm := range commentModels {
		comment, err := r.mapper.CommentToDomain(&cm)
		if err != nil {
			return err
		}
		if err := i.AttachComment(comment); err != nil {
			return err
		}
	}

	return nil
}
