package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskd/internal/application/ticket/usecases"
	"deskd/internal/shared/utils"
)

type SummaryHandler struct {
	getSummaryUC usecases.GetSummaryExecutor
}

func NewSummaryHandler(getSummaryUC usecases.GetSummaryExecutor) *SummaryHandler {
	return &SummaryHandler{getSummaryUC: getSummaryUC}
}

// GetSummary handles GET /summary
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	result, err := h.getSummaryUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
