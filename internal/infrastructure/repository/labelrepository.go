package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tracker/internal/domain/issue"
	"tracker/internal/infrastructure/persistence/mappers"
	"tracker/internal/infrastructure/persistence/models"
	db "tracker/internal/shared/db"
	apperrors "tracker/internal/shared/errors"
)

type LabelRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewLabelRepository(database *gorm.DB) *LabelRepository {
	return &LabelRepository{
		db:     database,
		mapper: mappers.NewIssueMapper(),
	}
}

// GetByName returns the label with the given exact name, or nil when no
// such label exists.
func (r *LabelRepository) GetByName(ctx context.Context, name string) (*issue.Label, error) {
	var model models.LabelModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find label: %w", err)
	}

	return r.mapper.LabelToDomain(&model)
}

// GetOrCreateByName is the idempotent upsert-by-unique-key primitive.
// When a concurrent transaction creates the same name first, the unique
// index rejects our insert and we re-read the winner's row.
func (r *LabelRepository) GetOrCreateByName(ctx context.Context, name string) (*issue.Label, error) {
	existing, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	label, err := issue.NewLabel(name)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	model := r.mapper.LabelToModel(label)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return r.GetByName(ctx, name)
		}
		return nil, fmt.Errorf("failed to create label: %w", err)
	}

	if err := label.SetID(model.ID); err != nil {
		return nil, err
	}
	return label, nil
}

func (r *LabelRepository) GetByIssueID(ctx context.Context, issueID uint) ([]*issue.Label, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var labelModels []models.LabelModel
	err := tx.Model(&models.LabelModel{}).
		Joins("JOIN issue_labels ON issue_labels.label_id = labels.id").
		Where("issue_labels.issue_id = ?", issueID).
		Order("labels.name ASC").
		Find(&labelModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find labels for issue: %w", err)
	}

	labels := make([]*issue.Label, len(labelModels))
	for idx, model := range labelModels {
		l, err := r.mapper.LabelToDomain(&model)
		if err != nil {
			return nil, err
		}
		labels[idx] = l
	}

	return labels, nil
}

// ReplaceIssueLabels replaces the issue's entire association set: the
// prior rows are fully deleted and the new set fully inserted. Callers
// run this inside one transaction so no intermediate state is visible.
func (r *LabelRepository) ReplaceIssueLabels(ctx context.Context, issueID uint, labelIDs []uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("issue_id = ?", issueID).Delete(&models.IssueLabelModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear issue labels: %w", err)
	}

	if len(labelIDs) == 0 {
		return nil
	}

	rows := make([]models.IssueLabelModel, len(labelIDs))
	for idx, labelID := range labelIDs {
		rows[idx] = models.IssueLabelModel{IssueID: issueID, LabelID: labelID}
	}

	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to insert issue labels: %w", err)
	}
	return nil
}

// Delete removes the label and cascades removal of its issue associations.
func (r *LabelRepository) Delete(ctx context.Context, labelID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("label_id = ?", labelID).Delete(&models.IssueLabelModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete label associations: %w", err)
	}

	result := tx.Delete(&models.LabelModel{}, labelID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete label: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("label not found")
	}
	return nil
}
