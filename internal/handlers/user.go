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

// UserHandler serves member profiles within the household.
type UserHandler struct {
	memberService *services.MemberService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(memberService *services.MemberService) *UserHandler {
	return &UserHandler{
		memberService: memberService,
	}
}

// List returns all members of the acting household, ordered by name.
func (h *UserHandler) List(c *gin.Context) {
	scope, exists := middleware.GetScope(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	members, err := h.memberService.List(scope.HouseholdID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	dtos := make([]dto.MemberDTO, len(members))
	for i, member := range members {
		dtos[i] = dto.ToMemberDTO(member)
	}
	c.JSON(http.StatusOK, dtos)
}

// Get returns a single member's profile.
func (h *UserHandler) Get(c *gin.Context) {
	scope, exists := middleware.GetScope(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	memberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	member, err := h.memberService.Get(scope.HouseholdID, memberID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberDTO(*member))
}

// Update edits a member's name or avatar. Members edit themselves; parents
// may edit anyone in the household.
func (h *UserHandler) Update(c *gin.Context) {
	scope, exists := middleware.GetScope(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	memberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	type UpdateRequest struct {
		Name      *string `json:"name"`
		AvatarURL *string `json:"avatar_url"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	member, err := h.memberService.UpdateProfile(scope, memberID, services.UpdateProfileInput{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberDTO(*member))
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidName):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrProfileForbidden):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrMemberNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
