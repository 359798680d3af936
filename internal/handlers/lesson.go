package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tsubaki-dev/lesson-points-api/internal/dto"
	apierrors "github.com/tsubaki-dev/lesson-points-api/internal/errors"
	"github.com/tsubaki-dev/lesson-points-api/internal/middleware"
	"github.com/tsubaki-dev/lesson-points-api/internal/services"
)

// LessonHandler serves the household lesson catalog.
type LessonHandler struct {
	lessonService *services.LessonService
}

// NewLessonHandler creates a new LessonHandler.
func NewLessonHandler(lessonService *services.LessonService) *LessonHandler {
	return &LessonHandler{
		lessonService: lessonService,
	}
}

// List returns active lessons, newest first. Supports ?topic= exact match.
func (h *LessonHandler) List(c *gin.Context) {
	scope, exists := middleware.GetScope(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	lessons, err := h.lessonService.List(scope.HouseholdID, c.Query("topic"))
	if err != nil {
		respondLessonError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLessonDTOs(lessons))
}

// Create adds a lesson to the catalog (parent only).
func (h *LessonHandler) Create(c *gin.Context) {
	scope, exists := middleware.GetScope(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateRequest struct {
		Title       string  `json:"title" binding:"required"`
		Description *string `json:"description"`
		Topic       string  `json:"topic" binding:"required"`
		Points      int     `json:"points" binding:"required"`
		Icon        *string `json:"icon"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "title, topic, and points are required")
		return
	}

	lesson, err := h.lessonService.Create(scope.HouseholdID, services.CreateLessonInput{
		Title:       req.Title,
		Description: req.Description,
		Topic:       req.Topic,
		Points:      req.Points,
		Icon:        req.Icon,
	})
	if err != nil {
		respondLessonError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLessonDTO(*lesson))
}

// Update applies a partial edit to a lesson (parent only).
func (h *LessonHandler) Update(c *gin.Context) {
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

	type UpdateRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Topic       *string `json:"topic"`
		Points      *int    `json:"points"`
		Icon        *string `json:"icon"`
		IsActive    *bool   `json:"is_active"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	lesson, err := h.lessonService.Update(scope.HouseholdID, lessonID, services.UpdateLessonInput{
		Title:       req.Title,
		Description: req.Description,
		Topic:       req.Topic,
		Points:      req.Points,
		Icon:        req.Icon,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondLessonError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLessonDTO(*lesson))
}

// Deactivate soft-deletes a lesson (parent only).
func (h *LessonHandler) Deactivate(c *gin.Context) {
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

	if err := h.lessonService.Deactivate(scope.HouseholdID, lessonID); err != nil {
		respondLessonError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lesson deactivated"})
}

func respondLessonError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrLessonTitleMissing),
		errors.Is(err, services.ErrInvalidTopic),
		errors.Is(err, services.ErrInvalidPoints):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrLessonNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
