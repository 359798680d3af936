package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tsubaki-dev/lesson-points-api/internal/dto"
	apierrors "github.com/tsubaki-dev/lesson-points-api/internal/errors"
	"github.com/tsubaki-dev/lesson-points-api/internal/services"
)

// AuthHandler coordinates registration, joining, and login.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new household with its founding parent.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		HouseholdName string `json:"household_name" binding:"required"`
		Name          string `json:"name" binding:"required"`
		Pin           string `json:"pin" binding:"required"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "household_name, name, and pin are required")
		return
	}

	result, err := h.authService.Register(services.RegisterInput{
		HouseholdName: req.HouseholdName,
		FounderName:   req.Name,
		Pin:           req.Pin,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAuthResponse(result))
}

// Join adds a member to an existing household via join code.
func (h *AuthHandler) Join(c *gin.Context) {
	type JoinRequest struct {
		JoinCode  string  `json:"join_code" binding:"required"`
		Name      string  `json:"name" binding:"required"`
		Pin       string  `json:"pin" binding:"required"`
		AvatarURL *string `json:"avatar_url"`
		Role      string  `json:"role"`
	}

	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "join_code, name, and pin are required")
		return
	}

	result, err := h.authService.Join(services.JoinInput{
		JoinCode:  req.JoinCode,
		Name:      req.Name,
		Pin:       req.Pin,
		AvatarURL: req.AvatarURL,
		Role:      req.Role,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAuthResponse(result))
}

// Login authenticates a member by name + PIN.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Name string `json:"name" binding:"required"`
		Pin  string `json:"pin" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "name and pin are required")
		return
	}

	result, err := h.authService.Login(services.LoginInput{
		Name: req.Name,
		Pin:  req.Pin,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAuthResponse(result))
}

func toAuthResponse(result *services.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{
		Token:     result.Token,
		User:      dto.ToMemberDTO(*result.Member),
		Household: dto.ToHouseholdDTO(*result.Household),
	}
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFieldsRequired),
		errors.Is(err, services.ErrPinTooShort):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, err.Error())
	case errors.Is(err, services.ErrInvalidJoinCode):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNameTaken):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
