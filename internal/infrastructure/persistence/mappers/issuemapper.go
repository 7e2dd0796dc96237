package mappers

import (
	"time"

	"tracker/internal/domain/issue"
	vo "tracker/internal/domain/issue/valueobjects"
	"tracker/internal/infrastructure/persistence/models"
)

// IssueMapper handles the conversion between issue domain entities and
// persistence models.
type IssueMapper interface {
	ToModel(i *issue.Issue) *models.IssueModel
	ToDomain(model *models.IssueModel) (*issue.Issue, error)

	CommentToModel(c *issue.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*issue.Comment, error)

	LabelToModel(l *issue.Label) *models.LabelModel
	LabelToDomain(model *models.LabelModel) (*issue.Label, error)
}

type IssueMapperImpl struct{}

func NewIssueMapper() IssueMapper {
	return &IssueMapperImpl{}
}

func (m *IssueMapperImpl) ToModel(i *issue.Issue) *models.IssueModel {
	model := &models.IssueModel{
		ID:          i.ID(),
		Title:       i.Title(),
		Description: i.Description(),
		Status:      i.Status().String(),
		Priority:    i.Priority().String(),
		Version:     i.Version(),
		AssigneeID:  i.AssigneeID(),
		CreatedAt:   i.CreatedAt().UnixMilli(),
		UpdatedAt:   i.UpdatedAt().UnixMilli(),
	}

	if i.ResolvedAt() != nil {
		resolved := i.ResolvedAt().UnixMilli()
		model.ResolvedAt = &resolved
	}

	return model
}

// ToDomain converts an issue persistence model to a domain entity.
// Labels and comments must be loaded separately by the repository.
func (m *IssueMapperImpl) ToDomain(model *models.IssueModel) (*issue.Issue, error) {
	status, err := vo.ParseStatus(model.Status)
	if err != nil {
		return nil, err
	}
	priority, err := vo.ParsePriority(model.Priority)
	if err != nil {
		return nil, err
	}

	var resolvedAt *time.Time
	if model.ResolvedAt != nil {
		t := millisToTime(*model.ResolvedAt)
		resolvedAt = &t
	}

	return issue.ReconstructIssue(
		model.ID,
		model.Title,
		model.Description,
		status,
		priority,
		model.Version,
		model.AssigneeID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
		resolvedAt,
	)
}

func (m *IssueMapperImpl) CommentToModel(c *issue.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		IssueID:   c.IssueID(),
		AuthorID:  c.AuthorID(),
		Body:      c.Body(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}

func (m *IssueMapperImpl) CommentToDomain(model *models.CommentModel) (*issue.Comment, error) {
	return issue.ReconstructComment(
		model.ID,
		model.IssueID,
		model.AuthorID,
		model.Body,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *IssueMapperImpl) LabelToModel(l *issue.Label) *models.LabelModel {
	return &models.LabelModel{
		ID:          l.ID(),
		Name:        l.Name(),
		Color:       l.Color(),
		Description: l.Description(),
		CreatedAt:   l.CreatedAt().UnixMilli(),
		UpdatedAt:   l.UpdatedAt().UnixMilli(),
	}
}

func (m *IssueMapperImpl) LabelToDomain(model *models.LabelModel) (*issue.Label, error) {
	return issue.ReconstructLabel(
		model.ID,
		model.Name,
		model.Color,
		model.Description,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
