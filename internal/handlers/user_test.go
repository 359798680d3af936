package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tsubaki-dev/lesson-points-api/internal/dto"
)

func TestUserHandler_List(t *testing.T) {
	env := setupTestEnv(t)
	parent := env.register(t, "The Smiths", "Alice", "1234")
	env.join(t, parent.Household.JoinCode, "Zoe", "5678", "")
	env.join(t, parent.Household.JoinCode, "Bobby", "5678", "")
	env.register(t, "The Does", "Dana", "4321")

	w := env.doJSON(t, http.MethodGet, "/api/users", parent.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var members []dto.MemberDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
	require.Len(t, members, 3)

	// Alphabetical, household-scoped.
	require.Equal(t, "Alice", members[0].Name)
	require.Equal(t, "Bobby", members[1].Name)
	require.Equal(t, "Zoe", members[2].Name)
}

func TestUserHandler_Get_CrossHousehold(t *testing.T) {
	env := setupTestEnv(t)
	first := env.register(t, "The Smiths", "Alice", "1234")
	second := env.register(t, "The Does", "Dana", "4321")

	w := env.doJSON(t, http.MethodGet, "/api/users/"+strconv.FormatUint(second.User.ID, 10), first.Token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_Update_Self(t *testing.T) {
	env := setupTestEnv(t)
	parent := env.register(t, "The Smiths", "Alice", "1234")
	kid := env.join(t, parent.Household.JoinCode, "Bobby", "5678", "")

	avatar := "https://example.com/bobby.png"
	w := env.doJSON(t, http.MethodPut, "/api/users/"+strconv.FormatUint(kid.User.ID, 10), kid.Token, map[string]string{
		"name":       "Bob",
		"avatar_url": avatar,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var member dto.MemberDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &member))
	require.Equal(t, "Bob", member.Name)
	require.NotNil(t, member.AvatarURL)
	require.Equal(t, avatar, *member.AvatarURL)
}

func TestUserHandler_Update_ParentEditsKid(t *testing.T) {
	env := setupTestEnv(t)
	parent := env.register(t, "The Smiths", "Alice", "1234")
	kid := env.join(t, parent.Household.JoinCode, "Bobby", "5678", "")

	w := env.doJSON(t, http.MethodPut, "/api/users/"+strconv.FormatUint(kid.User.ID, 10), parent.Token, map[string]string{
		"name": "Robert",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestUserHandler_Update_KidCannotEditOthers(t *testing.T) {
	env := setupTestEnv(t)
	parent := env.register(t, "The Smiths", "Alice", "1234")
	kid := env.join(t, parent.Household.JoinCode, "Bobby", "5678", "")

	w := env.doJSON(t, http.MethodPut, "/api/users/"+strconv.FormatUint(parent.User.ID, 10), kid.Token, map[string]string{
		"name": "Al",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}
