package usecases

import (
	"context"
	"fmt"

	"tracker/internal/application/issue/dto"
	"tracker/internal/domain/issue"
	"tracker/internal/shared/db"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

type ReplaceLabelsCommand struct {
	IssueID uint
	// Names must be distinct; a duplicate fails the whole command.
	Names []string
}

// ReplaceLabelsUseCase atomically replaces the issue's label set.
// Missing labels are created through the idempotent get-or-create
// primitive. The issue's version is deliberately not advanced: label
// membership is not a versioned field in this design. Concurrent
// replacements on the same issue are last-writer-wins, unguarded by
// version or lock.
type ReplaceLabelsUseCase struct {
	issueRepo issue.IssueRepository
	labelRepo issue.LabelRepository
	txManager db.TxManager
	logger    logger.Interface
}

func NewReplaceLabelsUseCase(
	issueRepo issue.IssueRepository,
	labelRepo issue.LabelRepository,
	txManager db.TxManager,
	logger logger.Interface,
) *ReplaceLabelsUseCase {
	return &ReplaceLabelsUseCase{
		issueRepo: issueRepo,
		labelRepo: labelRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *ReplaceLabelsUseCase) Execute(ctx context.Context, cmd ReplaceLabelsCommand) (*dto.IssueDTO, error) {
	// Reject duplicates up front; otherwise the association insert would
	// hit the composite primary key and fail as an internal error.
	seen := make(map[string]struct{}, len(cmd.Names))
	for _, name := range cmd.Names {
		if _, ok := seen[name]; ok {
			return nil, errors.NewValidationError(fmt.Sprintf("duplicate label name: %s", name))
		}
		seen[name] = struct{}{}
	}

	var result *dto.IssueDTO
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.issueRepo.GetByID(txCtx, cmd.IssueID)
		if err != nil {
			return err
		}

		labelIDs := make([]uint, 0, len(cmd.Names))
		labels := make([]*issue.Label, 0, len(cmd.Names))
		for _, name := range cmd.Names {
			label, err := uc.labelRepo.GetOrCreateByName(txCtx, name)
			if err != nil {
				return err
			}
			labelIDs = append(labelIDs, label.ID())
			labels = append(labels, label)
		}

		if err := uc.labelRepo.ReplaceIssueLabels(txCtx, existing.ID(), labelIDs); err != nil {
			return err
		}

		existing.SetLabels(labels)
		result = dto.FromIssue(existing)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("issue labels replaced", "issue_id", cmd.IssueID, "label_count", len(cmd.Names))
	return result, nil
}
