package usecases

import (
	"context"

	"tracker/internal/application/issue/dto"
	"tracker/internal/domain/issue"
	"tracker/internal/domain/user"
	"tracker/internal/shared/db"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

type AddCommentCommand struct {
	IssueID  uint
	AuthorID uint
	Body     string
}

type AddCommentUseCase struct {
	issueRepo   issue.IssueRepository
	commentRepo issue.CommentRepository
	userRepo    user.UserRepository
	txManager   db.TxManager
	logger      logger.Interface
}

func NewAddCommentUseCase(
	issueRepo issue.IssueRepository,
	commentRepo issue.CommentRepository,
	userRepo user.UserRepository,
	txManager db.TxManager,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		issueRepo:   issueRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	var result *dto.CommentDTO

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.issueRepo.GetByID(txCtx, cmd.IssueID); err != nil {
			return err
		}

		exists, err := uc.userRepo.Exists(txCtx, cmd.AuthorID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NewValidationError("author does not exist")
		}

		comment, err := issue.NewComment(cmd.IssueID, cmd.AuthorID, cmd.Body)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			return err
		}

		commentDTO := dto.FromComment(comment)
		result = &commentDTO
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("comment added", "issue_id", cmd.IssueID, "comment_id", result.ID)
	return result, nil
}
