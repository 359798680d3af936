package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tsubaki-dev/lesson-points-api/internal/dto"
)

func TestLeaderboardHandler_OrdersByPoints(t *testing.T) {
	env := setupTestEnv(t)
	parent := env.register(t, "The Smiths", "Alice", "1234")
	kidOne := env.join(t, parent.Household.JoinCode, "Bobby", "5678", "")
	kidTwo := env.join(t, parent.Household.JoinCode, "Carol", "5678", "")

	small := env.createLesson(t, parent.Token, "Fractions", "Math", 5)
	big := env.createLesson(t, parent.Token, "Essay", "Writing", 20)

	env.completeLesson(t, kidOne.Token, small.ID)
	env.completeLesson(t, kidTwo.Token, big.ID)

	w := env.doJSON(t, http.MethodGet, "/api/leaderboard", parent.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var board []dto.LeaderboardEntryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	require.Len(t, board, 3)

	require.Equal(t, kidTwo.User.ID, board[0].ID)
	require.Equal(t, 20, board[0].TotalPoints)
	require.Equal(t, kidOne.User.ID, board[1].ID)
	require.Equal(t, 5, board[1].TotalPoints)
	require.Equal(t, parent.User.ID, board[2].ID)
	require.Equal(t, 0, board[2].TotalPoints)
}

func TestLeaderboardHandler_TiesBreakByJoinOrder(t *testing.T) {
	env := setupTestEnv(t)
	parent := env.register(t, "The Smiths", "Alice", "1234")
	kid := env.join(t, parent.Household.JoinCode, "Bobby", "5678", "")

	w := env.doJSON(t, http.MethodGet, "/api/leaderboard", parent.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var board []dto.LeaderboardEntryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	require.Len(t, board, 2)

	// Everyone at zero: earlier members rank first.
	require.Equal(t, parent.User.ID, board[0].ID)
	require.Equal(t, kid.User.ID, board[1].ID)
}

func TestLeaderboardHandler_ScopedToHousehold(t *testing.T) {
	env := setupTestEnv(t)
	first := env.register(t, "The Smiths", "Alice", "1234")
	second := env.register(t, "The Does", "Dana", "4321")

	lesson := env.createLesson(t, second.Token, "Reading Time", "Reading", 15)
	env.completeLesson(t, second.Token, lesson.ID)

	w := env.doJSON(t, http.MethodGet, "/api/leaderboard", first.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var board []dto.LeaderboardEntryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	require.Len(t, board, 1)
	require.Equal(t, first.User.ID, board[0].ID)
}
