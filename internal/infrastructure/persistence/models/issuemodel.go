package models

type IssueModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:500;not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:20;not null;index;index:ix_issues_status_priority,priority:1"`
	Priority    string `gorm:"size:20;not null;index:ix_issues_status_priority,priority:2"`
	Version     int    `gorm:"not null;default:1"`
	AssigneeID  *uint  `gorm:"index;index:ix_issues_assignee_status,priority:1"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
	ResolvedAt  *int64 `gorm:"index"`

	// Note: No foreign key constraints or associations. Cascade rules
	// (comments and label associations removed with the issue, assignee
	// set to null on user deletion) are explicit in the repositories.
}

func (IssueModel) TableName() string {
	return "issues"
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	IssueID   uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return "comments"
}

type LabelModel struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"uniqueIndex;size:100;not null"`
	Color       *string `gorm:"size:7"`
	Description *string `gorm:"type:text"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (LabelModel) TableName() string {
	return "labels"
}

// IssueLabelModel is the many-to-many association set between issues and
// labels. The composite primary key forbids duplicate pairs; the set has
// no ordering semantics.
type IssueLabelModel struct {
	IssueID   uint  `gorm:"primaryKey"`
	LabelID   uint  `gorm:"primaryKey"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (IssueLabelModel) TableName() string {
	return "issue_labels"
}
