package issue

import (
	"fmt"
	"strings"
	"time"

	vo "tracker/internal/domain/issue/valueobjects"
	"tracker/internal/shared/biztime"
)

type Issue struct {
	id          uint
	title       string
	description string
	status      vo.Status
	priority    vo.Priority
	version     int
	assigneeID  *uint
	createdAt   time.Time
	updatedAt   time.Time
	resolvedAt  *time.Time
	labels      []*Label
	comments    []*Comment
}

// Patch carries a partial update. Nil fields retain their prior values.
type Patch struct {
	Title       *string
	Description *string
	Status      *vo.Status
	Priority    *vo.Priority
	AssigneeID  *uint
}

func NewIssue(
	title string,
	description string,
	status vo.Status,
	priority vo.Priority,
	assigneeID *uint,
) (*Issue, error) {
	if len(strings.TrimSpace(title)) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 500 {
		return nil, fmt.Errorf("title exceeds maximum length of 500 characters")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := biztime.NowUTC()
	return &Issue{
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		version:     1,
		assigneeID:  assigneeID,
		createdAt:   now,
		updatedAt:   now,
		labels:      []*Label{},
		comments:    []*Comment{},
	}, nil
}

func ReconstructIssue(
	id uint,
	title string,
	description string,
	status vo.Status,
	priority vo.Priority,
	version int,
	assigneeID *uint,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Issue, error) {
	if id == 0 {
		return nil, fmt.Errorf("issue ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if version < 1 {
		return nil, fmt.Errorf("version must be positive")
	}

	return &Issue{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		version:     version,
		assigneeID:  assigneeID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		resolvedAt:  resolvedAt,
		labels:      []*Label{},
		comments:    []*Comment{},
	}, nil
}

func (i *Issue) ID() uint {
	return i.id
}

func (i *Issue) Title() string {
	return i.title
}

func (i *Issue) Description() string {
	return i.description
}

func (i *Issue) Status() vo.Status {
	return i.status
}

func (i *Issue) Priority() vo.Priority {
	return i.priority
}

func (i *Issue) Version() int {
	return i.version
}

func (i *Issue) AssigneeID() *uint {
	return i.assigneeID
}

func (i *Issue) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Issue) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Issue) ResolvedAt() *time.Time {
	return i.resolvedAt
}

func (i *Issue) Labels() []*Label {
	labelsCopy := make([]*Label, len(i.labels))
	copy(labelsCopy, i.labels)
	return labelsCopy
}

func (i *Issue) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(i.comments))
	copy(commentsCopy, i.comments)
	return commentsCopy
}

func (i *Issue) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("issue ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("issue ID cannot be zero")
	}
	i.id = id
	return nil
}

// SetLabels replaces the in-memory label set. Invoked by the repository
// when loading associations; does not persist anything.
func (i *Issue) SetLabels(labels []*Label) {
	if labels == nil {
		labels = []*Label{}
	}
	i.labels = labels
}

// AttachComment adds a loaded comment to the in-memory entity.
func (i *Issue) AttachComment(c *Comment) error {
	if c == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	if c.IssueID() != i.id {
		return fmt.Errorf("comment issue ID mismatch")
	}
	i.comments = append(i.comments, c)
	return nil
}

// ApplyPatch applies a partial update: only non-nil fields are touched,
// the version advances by exactly one, and updated_at moves to now.
// The resolution-timestamp policy runs after a status change is applied:
// entering resolved sets resolved_at once, any other status clears it
// (idempotently, even when it is already nil).
func (i *Issue) ApplyPatch(p Patch) error {
	if p.Title != nil {
		if len(strings.TrimSpace(*p.Title)) == 0 {
			return fmt.Errorf("title cannot be empty")
		}
		if len(*p.Title) > 500 {
			return fmt.Errorf("title exceeds maximum length of 500 characters")
		}
		i.title = *p.Title
	}
	if p.Description != nil {
		i.description = *p.Description
	}
	if p.Priority != nil {
		if !p.Priority.IsValid() {
			return fmt.Errorf("invalid priority: %s", *p.Priority)
		}
		i.priority = *p.Priority
	}
	if p.AssigneeID != nil {
		assigneeID := *p.AssigneeID
		i.assigneeID = &assigneeID
	}
	if p.Status != nil {
		if !p.Status.IsValid() {
			return fmt.Errorf("invalid status: %s", *p.Status)
		}
		i.status = *p.Status
		i.applyResolvedPolicy()
	}

	i.version++
	i.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeStatus sets the status, advances the version, and applies the
// resolution-timestamp policy. Used by the bulk transition path.
func (i *Issue) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	i.status = newStatus
	i.applyResolvedPolicy()
	i.version++
	i.updatedAt = biztime.NowUTC()
	return nil
}

// applyResolvedPolicy keeps resolved_at consistent with the status:
// set once on entering resolved, cleared on any other status.
func (i *Issue) applyResolvedPolicy() {
	if i.status.IsResolved() {
		if i.resolvedAt == nil {
			now := biztime.NowUTC()
			i.resolvedAt = &now
		}
		return
	}
	i.resolvedAt = nil
}

func (i *Issue) Validate() error {
	if len(strings.TrimSpace(i.title)) == 0 {
		return fmt.Errorf("title is required")
	}
	if !i.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if !i.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if i.version < 1 {
		return fmt.Errorf("version must be positive")
	}
	return nil
}
