package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tsubaki-dev/lesson-points-api/internal/dto"
	apierrors "github.com/tsubaki-dev/lesson-points-api/internal/errors"
	"github.com/tsubaki-dev/lesson-points-api/internal/middleware"
	"github.com/tsubaki-dev/lesson-points-api/internal/models"
	"github.com/tsubaki-dev/lesson-points-api/internal/services"
)

// CompletionHandler serves the completion workflow.
type CompletionHandler struct {
	completionService *services.CompletionService
}

// NewCompletionHandler creates a new CompletionHandler.
func NewCompletionHandler(completionService *services.CompletionService) *CompletionHandler {
	return &CompletionHandler{
		completionService: completionService,
	}
}

// Complete records the acting member finishing a lesson. Points are
// credited immediately; a parent reviews afterwards.
func (h *CompletionHandler) Complete(c *gin.Context) {
	scope, exists := middleware.GetScope(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	lessonID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid lesson ID")
		return
	}

	completion, err := h.completionService.Complete(scope.HouseholdID, scope.MemberID, lessonID)
	if err != nil {
		respondCompletionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCompletionDTO(*completion))
}

// List returns the household's completions, most recent first. Supports
// ?status= and ?userId= filters; kid callers only ever see their own.
func (h *CompletionHandler) List(c *gin.Context) {
	scope, exists := middleware.GetScope(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var input services.ListInput

	if statusStr := c.Query("status"); statusStr != "" {
		status := models.CompletionStatus(statusStr)
		switch status {
		case models.CompletionPending, models.CompletionApproved, models.CompletionRejected:
			input.Status = &status
		default:
			apierrors.BadRequest(c, "Invalid status filter")
			return
		}
	}

	userIDStr := c.Query("userId")
	if userIDStr == "" {
		userIDStr = c.Query("user_id")
	}
	if userIDStr != "" {
		userID, err := strconv.ParseUint(userIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid userId")
			return
		}
		input.MemberID = &userID
	}

	completions, err := h.completionService.List(scope, input)
	if err != nil {
		respondCompletionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompletionDTOs(completions))
}

// Approve marks a pending completion approved (parent only).
func (h *CompletionHandler) Approve(c *gin.Context) {
	h.adjudicate(c, h.completionService.Approve)
}

// Reject marks a pending completion rejected and reverses its points
// (parent only).
func (h *CompletionHandler) Reject(c *gin.Context) {
	h.adjudicate(c, h.completionService.Reject)
}

func (h *CompletionHandler) adjudicate(c *gin.Context, fn func(householdID, parentID, completionID uint64) (*models.Completion, error)) {
	scope, exists := middleware.GetScope(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	completionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid completion ID")
		return
	}

	completion, err := fn(scope.HouseholdID, scope.MemberID, completionID)
	if err != nil {
		respondCompletionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompletionDTO(*completion))
}

func respondCompletionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrLessonNotFound),
		errors.Is(err, services.ErrCompletionNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
