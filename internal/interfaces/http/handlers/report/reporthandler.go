package report

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tracker/internal/application/report/usecases"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
	"tracker/internal/shared/utils"
)

type ReportHandler struct {
	topAssigneesUC      usecases.TopAssigneesExecutor
	resolutionLatencyUC usecases.ResolutionLatencyExecutor
	logger              logger.Interface
}

func NewReportHandler(
	topAssigneesUC usecases.TopAssigneesExecutor,
	resolutionLatencyUC usecases.ResolutionLatencyExecutor,
) *ReportHandler {
	return &ReportHandler{
		topAssigneesUC:      topAssigneesUC,
		resolutionLatencyUC: resolutionLatencyUC,
		logger:              logger.NewLogger(),
	}
}

// TopAssignees handles GET /reports/top-assignees
func (h *ReportHandler) TopAssignees(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid limit parameter"))
			return
		}
		limit = n
	}

	rows, err := h.topAssigneesUC.Execute(c.Request.Context(), usecases.TopAssigneesQuery{Limit: limit})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", rows)
}

// ResolutionLatency handles GET /reports/resolution-latency
func (h *ReportHandler) ResolutionLatency(c *gin.Context) {
	rows, err := h.resolutionLatencyUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", rows)
}
