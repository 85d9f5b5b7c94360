package controller

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/application/usecase/completion"
	domainerror "github.com/tracker-app/backend/internal/domain/error"
	"github.com/tracker-app/backend/internal/integration/entrypoint/dto"
	"github.com/tracker-app/backend/internal/integration/entrypoint/middleware"
)

// CompletionController handles the completion ledger toggle endpoint.
type CompletionController struct {
	toggleUseCase *completion.ToggleCompletionUseCase
}

// NewCompletionController creates a new completion controller instance.
func NewCompletionController(toggleUseCase *completion.ToggleCompletionUseCase) *CompletionController {
	return &CompletionController{toggleUseCase: toggleUseCase}
}

// Toggle handles POST /trackers/:id/toggle requests. The request body may
// carry a date; without one the toggle applies to today.
func (c *CompletionController) Toggle(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse tracker ID from URL
	trackerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tracker ID format",
		})
		return
	}

	// Parse request body; an empty body toggles today
	var req dto.ToggleCompletionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		date = parsed
	}

	// Execute use case
	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), completion.ToggleCompletionInput{
		TrackerID: trackerID,
		UserID:    userID,
		Date:      date,
	})
	if err != nil {
		c.handleCompletionError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToggleCompletionResponse{
		IsCompleted:     output.IsCompleted,
		CompletionCount: output.CompletionCount,
	})
}

// handleCompletionError handles completion errors and returns appropriate HTTP responses.
func (c *CompletionController) handleCompletionError(ctx *gin.Context, err error) {
	var cmpErr *domainerror.CompletionError
	if errors.As(err, &cmpErr) {
		statusCode := c.getStatusCodeForCompletionError(cmpErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: cmpErr.Message,
			Code:  string(cmpErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCompletionError maps completion error codes to HTTP status codes.
func (c *CompletionController) getStatusCodeForCompletionError(code domainerror.CompletionErrorCode) int {
	switch code {
	case domainerror.ErrCodeFutureDateCompletion:
		return http.StatusConflict
	case domainerror.ErrCodeCompletionTrackerNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
