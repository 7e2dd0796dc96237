package issue

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tracker/internal/application/issue/usecases"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/utils"
)

type CreateIssueRequest struct {
	Title       string `json:"title" binding:"required,max=500"`
	Description string `json:"description" binding:"max=5000"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssigneeID  *uint  `json:"assignee_id"`
}

func (r *CreateIssueRequest) ToCommand() usecases.CreateIssueCommand {
	return usecases.CreateIssueCommand{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		AssigneeID:  r.AssigneeID,
	}
}

type UpdateIssueRequest struct {
	ExpectedVersion int     `json:"expected_version" binding:"required,min=1"`
	Title           *string `json:"title" binding:"omitempty,max=500"`
	Description     *string `json:"description" binding:"omitempty,max=5000"`
	Status          *string `json:"status"`
	Priority        *string `json:"priority"`
	AssigneeID      *uint   `json:"assignee_id"`
}

func (r *UpdateIssueRequest) ToCommand(issueID uint) usecases.UpdateIssueCommand {
	return usecases.UpdateIssueCommand{
		IssueID:         issueID,
		ExpectedVersion: r.ExpectedVersion,
		Title:           r.Title,
		Description:     r.Description,
		Status:          r.Status,
		Priority:        r.Priority,
		AssigneeID:      r.AssigneeID,
	}
}

type ReplaceLabelsRequest struct {
	// Duplicate names are rejected here rather than deduplicated: the
	// client sent a set that is not a set.
	Labels []string `json:"labels" binding:"required,unique"`
}

type BulkUpdateStatusRequest struct {
	IssueIDs []uint `json:"issue_ids" binding:"required,min=1"`
	Status   string `json:"status" binding:"required"`
}

func (r *BulkUpdateStatusRequest) ToCommand() usecases.BulkUpdateStatusCommand {
	return usecases.BulkUpdateStatusCommand{
		IssueIDs: r.IssueIDs,
		Status:   r.Status,
	}
}

type AddCommentRequest struct {
	AuthorID uint   `json:"author_id" binding:"required"`
	Body     string `json:"body" binding:"required,max=10000"`
}

func (r *AddCommentRequest) ToCommand(issueID uint) usecases.AddCommentCommand {
	return usecases.AddCommentCommand{
		IssueID:  issueID,
		AuthorID: r.AuthorID,
		Body:     r.Body,
	}
}

type ListIssuesRequest struct {
	Page       int
	PageSize   int
	Status     *string
	Priority   *string
	AssigneeID *uint
}

func (r *ListIssuesRequest) ToQuery() usecases.ListIssuesQuery {
	return usecases.ListIssuesQuery{
		Page:       r.Page,
		PageSize:   r.PageSize,
		Status:     r.Status,
		Priority:   r.Priority,
		AssigneeID: r.AssigneeID,
	}
}

func parseListIssuesRequest(c *gin.Context) (*ListIssuesRequest, error) {
	p := utils.ParsePagination(c)

	req := &ListIssuesRequest{
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	if status := c.Query("status"); status != "" {
		req.Status = &status
	}
	if priority := c.Query("priority"); priority != "" {
		req.Priority = &priority
	}
	if assignee := c.Query("assignee_id"); assignee != "" {
		id, err := strconv.ParseUint(assignee, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid assignee_id parameter")
		}
		assigneeID := uint(id)
		req.AssigneeID = &assigneeID
	}

	return req, nil
}

func parseIssueID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid issue ID")
	}
	return uint(id), nil
}
