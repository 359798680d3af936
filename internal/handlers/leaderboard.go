package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tsubaki-dev/lesson-points-api/internal/dto"
	apierrors "github.com/tsubaki-dev/lesson-points-api/internal/errors"
	"github.com/tsubaki-dev/lesson-points-api/internal/middleware"
	"github.com/tsubaki-dev/lesson-points-api/internal/services"
)

// LeaderboardHandler serves the household point ranking.
type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// Leaderboard returns household members ranked by total points.
func (h *LeaderboardHandler) Leaderboard(c *gin.Context) {
	scope, exists := middleware.GetScope(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	members, err := h.leaderboardService.Leaderboard(scope.HouseholdID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	entries := make([]dto.LeaderboardEntryDTO, len(members))
	for i, member := range members {
		entries[i] = dto.ToLeaderboardEntryDTO(member)
	}
	c.JSON(http.StatusOK, entries)
}
