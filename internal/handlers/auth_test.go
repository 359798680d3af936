package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tsubaki-dev/lesson-points-api/internal/models"
)

func TestAuthHandler_Register(t *testing.T) {
	env := setupTestEnv(t)

	resp := env.register(t, "The Smiths", "Alice", "1234")

	require.NotEmpty(t, resp.Token)
	require.Equal(t, "Alice", resp.User.Name)
	require.Equal(t, models.RoleParent, resp.User.Role)
	require.Equal(t, 0, resp.User.TotalPoints)
	require.Equal(t, "The Smiths", resp.Household.Name)
	require.Len(t, resp.Household.JoinCode, 6)

	// The token carries the new household's identity
	claims, err := env.tokens.Parse(resp.Token)
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, claims.MemberID)
	require.Equal(t, resp.Household.ID, claims.HouseholdID)
	require.Equal(t, models.RoleParent, claims.Role)
}

func TestAuthHandler_Register_ShortPin(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"household_name": "The Smiths",
		"name":           "Alice",
		"pin":            "12",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Join(t *testing.T) {
	env := setupTestEnv(t)
	parent := env.register(t, "The Smiths", "Alice", "1234")

	kid := env.join(t, parent.Household.JoinCode, "Bobby", "5678", "")
	require.Equal(t, models.RoleKid, kid.User.Role)
	require.Equal(t, parent.Household.ID, kid.User.HouseholdID)

	// Join codes are matched case-insensitively
	other := env.join(t, strings.ToLower(parent.Household.JoinCode), "Carol", "5678", "parent")
	require.Equal(t, models.RoleParent, other.User.Role)
}

func TestAuthHandler_Join_UnknownCode(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/auth/join", "", map[string]string{
		"join_code": "ZZZZZZ",
		"name":      "Bobby",
		"pin":       "5678",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthHandler_Join_DuplicateName(t *testing.T) {
	env := setupTestEnv(t)
	parent := env.register(t, "The Smiths", "Alice", "1234")

	// Same name, different PIN: still a conflict
	w := env.doJSON(t, http.MethodPost, "/api/auth/join", "", map[string]string{
		"join_code": parent.Household.JoinCode,
		"name":      "Alice",
		"pin":       "9999",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)
	registered := env.register(t, "The Smiths", "Alice", "1234")

	w := env.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"name": "Alice",
		"pin":  "1234",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims, err := env.tokens.Parse(resp.Token)
	require.NoError(t, err)
	require.Equal(t, registered.Household.ID, claims.HouseholdID)
}

func TestAuthHandler_Login_SameNameDifferentHouseholds(t *testing.T) {
	env := setupTestEnv(t)
	first := env.register(t, "The Smiths", "Alice", "1234")
	second := env.register(t, "The Does", "Alice", "9876")

	w := env.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"name": "Alice",
		"pin":  "9876",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims, err := env.tokens.Parse(resp.Token)
	require.NoError(t, err)
	require.Equal(t, second.Household.ID, claims.HouseholdID)
	require.NotEqual(t, first.Household.ID, claims.HouseholdID)
}

func TestAuthHandler_Login_ErrorDoesNotLeakNames(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "The Smiths", "Alice", "1234")

	wrongPin := env.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"name": "Alice",
		"pin":  "0000",
	})
	unknownName := env.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"name": "Nobody",
		"pin":  "0000",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPin.Code)
	require.Equal(t, http.StatusUnauthorized, unknownName.Code)
	require.JSONEq(t, wrongPin.Body.String(), unknownName.Body.String(),
		"wrong PIN and unknown name must be indistinguishable")

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(wrongPin.Body.Bytes(), &body))
	require.Equal(t, "INVALID_CREDENTIALS", body.Code)
}

func TestAuthRoutes_RateLimited(t *testing.T) {
	env := setupTestEnv(t)

	last := 0
	for i := 0; i < 21; i++ {
		w := env.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"name": "Alice",
			"pin":  "0000",
		})
		last = w.Code
	}
	require.Equal(t, http.StatusTooManyRequests, last)
}
