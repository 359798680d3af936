package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tsubaki-dev/lesson-points-api/internal/dto"
	apierrors "github.com/tsubaki-dev/lesson-points-api/internal/errors"
	"github.com/tsubaki-dev/lesson-points-api/internal/middleware"
	"github.com/tsubaki-dev/lesson-points-api/internal/services"
)

// HouseholdHandler serves the current household's info.
type HouseholdHandler struct {
	householdService *services.HouseholdService
}

// NewHouseholdHandler creates a new HouseholdHandler.
func NewHouseholdHandler(householdService *services.HouseholdService) *HouseholdHandler {
	return &HouseholdHandler{
		householdService: householdService,
	}
}

// Get returns the acting member's household with counts.
func (h *HouseholdHandler) Get(c *gin.Context) {
	scope, exists := middleware.GetScope(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	summary, err := h.householdService.Get(scope.HouseholdID)
	if err != nil {
		respondHouseholdError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHouseholdDetailDTO(*summary.Household, summary.MemberCount, summary.LessonCount))
}

// Update renames the household (parent only).
func (h *HouseholdHandler) Update(c *gin.Context) {
	scope, exists := middleware.GetScope(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "name is required")
		return
	}

	household, err := h.householdService.Rename(scope.HouseholdID, req.Name)
	if err != nil {
		respondHouseholdError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHouseholdDTO(*household))
}

func respondHouseholdError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidHouseholdName):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrHouseholdNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
