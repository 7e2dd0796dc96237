// Package dto defines the data transfer shapes returned by the issue
// use cases to the transport layer.
package dto

import (
	"time"

	"tracker/internal/domain/issue"
	"tracker/internal/domain/user"
)

type IssueDTO struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      string       `json:"status"`
	Priority    string       `json:"priority"`
	Version     int          `json:"version"`
	AssigneeID  *uint        `json:"assignee_id,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	ResolvedAt  *time.Time   `json:"resolved_at,omitempty"`
	Labels      []LabelDTO   `json:"labels"`
	Comments    []CommentDTO `json:"comments,omitempty"`
}

type LabelDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Color       *string `json:"color,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CommentDTO struct {
	ID        uint      `json:"id"`
	IssueID   uint      `json:"issue_id"`
	AuthorID  uint      `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserDTO struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
}

func FromIssue(i *issue.Issue) *IssueDTO {
	d := &IssueDTO{
		ID:          i.ID(),
		Title:       i.Title(),
		Description: i.Description(),
		Status:      i.Status().String(),
		Priority:    i.Priority().String(),
		Version:     i.Version(),
		AssigneeID:  i.AssigneeID(),
		CreatedAt:   i.CreatedAt(),
		UpdatedAt:   i.UpdatedAt(),
		ResolvedAt:  i.ResolvedAt(),
		Labels:      make([]LabelDTO, 0, len(i.Labels())),
	}

	for _, l := range i.Labels() {
		d.Labels = append(d.Labels, FromLabel(l))
	}
	for _, c := range i.Comments() {
		d.Comments = append(d.Comments, FromComment(c))
	}

	return d
}

func FromLabel(l *issue.Label) LabelDTO {
	return LabelDTO{
		ID:          l.ID(),
		Name:        l.Name(),
		Color:       l.Color(),
		Description: l.Description(),
	}
}

func FromComment(c *issue.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		IssueID:   c.IssueID(),
		AuthorID:  c.AuthorID(),
		Body:      c.Body(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func FromUser(u *user.User) UserDTO {
	return UserDTO{
		ID:       u.ID(),
		Username: u.Username(),
		Email:    u.Email(),
		FullName: u.FullName(),
	}
}
