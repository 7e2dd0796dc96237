package issue

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tracker/internal/application/issue/usecases"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
	"tracker/internal/shared/utils"
)

type IssueHandler struct {
	createIssueUC   usecases.CreateIssueExecutor
	getIssueUC      usecases.GetIssueExecutor
	listIssuesUC    usecases.ListIssuesExecutor
	updateIssueUC   usecases.UpdateIssueExecutor
	deleteIssueUC   usecases.DeleteIssueExecutor
	addCommentUC    usecases.AddCommentExecutor
	replaceLabelsUC usecases.ReplaceLabelsExecutor
	bulkStatusUC    usecases.BulkUpdateStatusExecutor
	importIssuesUC  usecases.ImportIssuesExecutor
	getTimelineUC   usecases.GetTimelineExecutor
	logger          logger.Interface
}

func NewIssueHandler(
	createIssueUC usecases.CreateIssueExecutor,
	getIssueUC usecases.GetIssueExecutor,
	listIssuesUC usecases.ListIssuesExecutor,
	updateIssueUC usecases.UpdateIssueExecutor,
	deleteIssueUC usecases.DeleteIssueExecutor,
	addCommentUC usecases.AddCommentExecutor,
	replaceLabelsUC usecases.ReplaceLabelsExecutor,
	bulkStatusUC usecases.BulkUpdateStatusExecutor,
	importIssuesUC usecases.ImportIssuesExecutor,
	getTimelineUC usecases.GetTimelineExecutor,
) *IssueHandler {
	return &IssueHandler{
		createIssueUC:   createIssueUC,
		getIssueUC:      getIssueUC,
		listIssuesUC:    listIssuesUC,
		updateIssueUC:   updateIssueUC,
		deleteIssueUC:   deleteIssueUC,
		addCommentUC:    addCommentUC,
		replaceLabelsUC: replaceLabelsUC,
		bulkStatusUC:    bulkStatusUC,
		importIssuesUC:  importIssuesUC,
		getTimelineUC:   getTimelineUC,
		logger:          logger.NewLogger(),
	}
}

// CreateIssue handles POST /issues
func (h *IssueHandler) CreateIssue(c *gin.Context) {
	var req CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create issue", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createIssueUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Issue created successfully")
}

// GetIssue handles GET /issues/:id
func (h *IssueHandler) GetIssue(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getIssueUC.Execute(c.Request.Context(), usecases.GetIssueQuery{IssueID: issueID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListIssues handles GET /issues
func (h *IssueHandler) ListIssues(c *gin.Context) {
	req, err := parseListIssuesRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listIssuesUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Issues, result.Total, req.Page, req.PageSize)
}

// UpdateIssue handles PATCH /issues/:id. The request carries the version
// the client last read; a stale version yields 409 with no mutation.
func (h *IssueHandler) UpdateIssue(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update issue", "error", err, "issue_id", issueID)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateIssueUC.Execute(c.Request.Context(), req.ToCommand(issueID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue updated successfully", result)
}

// DeleteIssue handles DELETE /issues/:id
func (h *IssueHandler) DeleteIssue(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteIssueUC.Execute(c.Request.Context(), usecases.DeleteIssueCommand{IssueID: issueID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AddComment handles POST /issues/:id/comments
func (h *IssueHandler) AddComment(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), req.ToCommand(issueID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// ReplaceLabels handles PUT /issues/:id/labels. The whole label set is
// replaced with the request payload; it does not merge.
func (h *IssueHandler) ReplaceLabels(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReplaceLabelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.replaceLabelsUC.Execute(c.Request.Context(), usecases.ReplaceLabelsCommand{
		IssueID: issueID,
		Names:   req.Labels,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Labels replaced successfully", result)
}

// BulkUpdateStatus handles POST /issues/bulk/status
func (h *IssueHandler) BulkUpdateStatus(c *gin.Context) {
	var req BulkUpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.bulkStatusUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Statuses updated successfully", result)
}

// ImportIssues handles POST /issues/import. The CSV file arrives as a
// multipart upload under the "file" field.
func (h *IssueHandler) ImportIssues(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("csv file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("failed to open uploaded file"))
		return
	}
	defer file.Close()

	result, err := h.importIssuesUC.Execute(c.Request.Context(), usecases.ImportIssuesCommand{Reader: file})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Import completed", result)
}

// GetTimeline handles GET /issues/:id/timeline
func (h *IssueHandler) GetTimeline(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	events, err := h.getTimelineUC.Execute(c.Request.Context(), usecases.GetTimelineQuery{IssueID: issueID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", events)
}
