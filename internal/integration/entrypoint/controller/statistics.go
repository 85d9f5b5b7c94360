package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tracker-app/backend/internal/application/usecase/statistics"
	domainerror "github.com/tracker-app/backend/internal/domain/error"
	"github.com/tracker-app/backend/internal/integration/entrypoint/dto"
	"github.com/tracker-app/backend/internal/integration/entrypoint/middleware"
)

// StatisticsController handles the statistics endpoint.
type StatisticsController struct {
	getUseCase *statistics.GetStatisticsUseCase
}

// NewStatisticsController creates a new statistics controller instance.
func NewStatisticsController(getUseCase *statistics.GetStatisticsUseCase) *StatisticsController {
	return &StatisticsController{getUseCase: getUseCase}
}

// Get handles GET /statistics requests.
func (c *StatisticsController) Get(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Execute use case
	output, err := c.getUseCase.Execute(ctx.Request.Context(), statistics.GetStatisticsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute statistics",
		})
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToStatisticsResponse(output))
}
