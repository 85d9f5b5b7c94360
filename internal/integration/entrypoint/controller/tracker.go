package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/application/usecase/tracker"
	domainerror "github.com/tracker-app/backend/internal/domain/error"
	"github.com/tracker-app/backend/internal/integration/entrypoint/dto"
	"github.com/tracker-app/backend/internal/integration/entrypoint/middleware"
)

// TrackerController handles tracker endpoints.
type TrackerController struct {
	listUseCase   *tracker.ListTrackersUseCase
	createUseCase *tracker.CreateTrackerUseCase
	updateUseCase *tracker.UpdateTrackerUseCase
	deleteUseCase *tracker.DeleteTrackerUseCase
	pinUseCase    *tracker.PinTrackerUseCase
}

// NewTrackerController creates a new tracker controller instance.
func NewTrackerController(
	listUseCase *tracker.ListTrackersUseCase,
	createUseCase *tracker.CreateTrackerUseCase,
	updateUseCase *tracker.UpdateTrackerUseCase,
	deleteUseCase *tracker.DeleteTrackerUseCase,
	pinUseCase *tracker.PinTrackerUseCase,
) *TrackerController {
	return &TrackerController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		pinUseCase:    pinUseCase,
	}
}

// List handles GET /trackers requests.
func (c *TrackerController) List(ctx *gin.Context) {
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
	output, err := c.listUseCase.Execute(ctx.Request.Context(), tracker.ListTrackersInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve trackers",
		})
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToTrackerListResponse(output.Trackers))
}

// Create handles POST /trackers requests.
func (c *TrackerController) Create(ctx *gin.Context) {
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
	var req dto.CreateTrackerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTrackerFields),
		})
		return
	}

	schedule, err := req.Schedule.ToSchedule()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid schedule",
			Code:    string(domainerror.ErrCodeEmptySchedule),
			Details: err.Error(),
		})
		return
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), tracker.CreateTrackerInput{
		UserID:     userID,
		Title:      req.Title,
		Emoji:      req.Emoji,
		Color:      req.Color,
		Schedule:   schedule,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		c.handleTrackerError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToTrackerResponse(output.Tracker))
}

// Update handles PUT /trackers/:id requests.
func (c *TrackerController) Update(ctx *gin.Context) {
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

	// Parse request body
	var req dto.UpdateTrackerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTrackerFields),
		})
		return
	}

	schedule, err := req.Schedule.ToSchedule()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid schedule",
			Code:    string(domainerror.ErrCodeEmptySchedule),
			Details: err.Error(),
		})
		return
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), tracker.UpdateTrackerInput{
		TrackerID:  trackerID,
		UserID:     userID,
		Title:      req.Title,
		Emoji:      req.Emoji,
		Color:      req.Color,
		Schedule:   schedule,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		c.handleTrackerError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToTrackerResponse(output.Tracker))
}

// Delete handles DELETE /trackers/:id requests.
func (c *TrackerController) Delete(ctx *gin.Context) {
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

	// Execute use case
	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), tracker.DeleteTrackerInput{
		TrackerID: trackerID,
		UserID:    userID,
	})
	if err != nil {
		c.handleTrackerError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// Pin handles PATCH /trackers/:id/pin requests.
func (c *TrackerController) Pin(ctx *gin.Context) {
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

	// Parse request body
	var req dto.PinTrackerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTrackerFields),
		})
		return
	}

	// Execute use case
	output, err := c.pinUseCase.Execute(ctx.Request.Context(), tracker.PinTrackerInput{
		TrackerID: trackerID,
		UserID:    userID,
		IsPinned:  *req.IsPinned,
	})
	if err != nil {
		c.handleTrackerError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToTrackerResponse(output.Tracker))
}

// handleTrackerError handles tracker errors and returns appropriate HTTP responses.
func (c *TrackerController) handleTrackerError(ctx *gin.Context, err error) {
	var trkErr *domainerror.TrackerError
	if errors.As(err, &trkErr) {
		statusCode := c.getStatusCodeForTrackerError(trkErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: trkErr.Message,
			Code:  string(trkErr.Code),
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := http.StatusBadRequest
		if catErr.Code == domainerror.ErrCodeCategoryNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTrackerError maps tracker error codes to HTTP status codes.
func (c *TrackerController) getStatusCodeForTrackerError(code domainerror.TrackerErrorCode) int {
	switch code {
	case domainerror.ErrCodeTrackerNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTracker:
		return http.StatusForbidden
	case domainerror.ErrCodeEmptyTrackerTitle,
		domainerror.ErrCodeTrackerTitleTooLong,
		domainerror.ErrCodeInvalidTrackerColor,
		domainerror.ErrCodeInvalidTrackerEmoji,
		domainerror.ErrCodeEmptySchedule,
		domainerror.ErrCodeMissingCategory,
		domainerror.ErrCodeMissingTrackerFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
