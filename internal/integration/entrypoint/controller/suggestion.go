package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tracker-app/backend/internal/application/usecase/suggestion"
	domainerror "github.com/tracker-app/backend/internal/domain/error"
	"github.com/tracker-app/backend/internal/integration/entrypoint/dto"
	"github.com/tracker-app/backend/internal/integration/entrypoint/middleware"
)

// SuggestionController handles the AI tracker suggestion endpoint.
type SuggestionController struct {
	suggestUseCase *suggestion.SuggestTrackerUseCase
}

// NewSuggestionController creates a new suggestion controller instance.
func NewSuggestionController(suggestUseCase *suggestion.SuggestTrackerUseCase) *SuggestionController {
	return &SuggestionController{suggestUseCase: suggestUseCase}
}

// Suggest handles POST /suggestions/tracker requests.
func (c *SuggestionController) Suggest(ctx *gin.Context) {
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
	var req dto.SuggestTrackerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptySuggestionTitle),
		})
		return
	}

	// Execute use case
	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), suggestion.SuggestTrackerInput{
		UserID: userID,
		Title:  req.Title,
	})
	if err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToSuggestionResponse(output.Suggestion))
}

// handleSuggestionError handles suggestion errors and returns appropriate HTTP responses.
func (c *SuggestionController) handleSuggestionError(ctx *gin.Context, err error) {
	var sugErr *domainerror.SuggestionError
	if errors.As(err, &sugErr) {
		statusCode := c.getStatusCodeForSuggestionError(sugErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: sugErr.Message,
			Code:  string(sugErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSuggestionError maps suggestion error codes to HTTP status codes.
func (c *SuggestionController) getStatusCodeForSuggestionError(code domainerror.SuggestionErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptySuggestionTitle:
		return http.StatusBadRequest
	case domainerror.ErrCodeSuggestionUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeSuggestionFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
