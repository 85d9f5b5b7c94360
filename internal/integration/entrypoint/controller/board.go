package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tracker-app/backend/internal/application/usecase/board"
	"github.com/tracker-app/backend/internal/domain/entity"
	domainerror "github.com/tracker-app/backend/internal/domain/error"
	"github.com/tracker-app/backend/internal/integration/entrypoint/dto"
	"github.com/tracker-app/backend/internal/integration/entrypoint/middleware"
)

// BoardController handles the derived tracker board and the per-user
// filter preference.
type BoardController struct {
	sectionsUseCase  *board.VisibleSectionsUseCase
	getFilterUseCase *board.GetFilterUseCase
	setFilterUseCase *board.SetFilterUseCase
}

// NewBoardController creates a new board controller instance.
func NewBoardController(
	sectionsUseCase *board.VisibleSectionsUseCase,
	getFilterUseCase *board.GetFilterUseCase,
	setFilterUseCase *board.SetFilterUseCase,
) *BoardController {
	return &BoardController{
		sectionsUseCase:  sectionsUseCase,
		getFilterUseCase: getFilterUseCase,
		setFilterUseCase: setFilterUseCase,
	}
}

// Get handles GET /board requests. Query parameters: date (YYYY-MM-DD,
// defaults to today), filter (overrides the stored preference for this
// query only) and search (case-sensitive substring on tracker titles).
func (c *BoardController) Get(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse query parameters
	input := board.VisibleSectionsInput{
		UserID:     userID,
		SearchText: ctx.Query("search"),
	}
	if dateStr := ctx.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		input.ReferenceDate = date
	}
	if filterStr := ctx.Query("filter"); filterStr != "" {
		filter := entity.Filter(filterStr)
		if !filter.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Unknown filter value",
			})
			return
		}
		input.Filter = filter
	}

	// Execute use case
	output, err := c.sectionsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build board",
		})
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToBoardResponse(output.Sections, output.ReferenceDate, output.Filter))
}

// GetFilter handles GET /board/filter requests.
func (c *BoardController) GetFilter(ctx *gin.Context) {
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
	output, err := c.getFilterUseCase.Execute(ctx.Request.Context(), board.GetFilterInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to read filter preference",
		})
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.FilterResponse{Filter: output.Filter})
}

// SetFilter handles PUT /board/filter requests.
func (c *BoardController) SetFilter(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse request body
	var req dto.SetFilterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	filter := entity.Filter(req.Filter)
	if !filter.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Unknown filter value",
		})
		return
	}

	// Execute use case
	output, err := c.setFilterUseCase.Execute(ctx.Request.Context(), board.SetFilterInput{
		UserID: userID,
		Filter: filter,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to store filter preference",
		})
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.FilterResponse{Filter: output.Filter})
}
