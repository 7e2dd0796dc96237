package issue

import (
	"fmt"
	"strings"
	"time"

	"tracker/internal/shared/biztime"
)

type Comment struct {
	id        uint
	issueID   uint
	authorID  uint
	body      string
	createdAt time.Time
	updatedAt time.Time
}

func NewComment(
	issueID uint,
	authorID uint,
	body string,
) (*Comment, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(strings.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("comment body cannot be empty")
	}

	now := biztime.NowUTC()
	return &Comment{
		issueID:   issueID,
		authorID:  authorID,
		body:      body,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructComment(
	id uint,
	issueID uint,
	authorID uint,
	body string,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		id:        id,
		issueID:   issueID,
		authorID:  authorID,
		body:      body,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) IssueID() uint {
	return c.issueID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) Body() string {
	return c.body
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Comment) UpdateBody(body string) error {
	if len(strings.TrimSpace(body)) == 0 {
		return fmt.Errorf("comment body cannot be empty")
	}
	c.body = body
	c.updatedAt = biztime.NowUTC()
	return nil
}
