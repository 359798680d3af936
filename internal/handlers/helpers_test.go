package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tsubaki-dev/lesson-points-api/internal/auth"
	"github.com/tsubaki-dev/lesson-points-api/internal/database"
	"github.com/tsubaki-dev/lesson-points-api/internal/dto"
	"github.com/tsubaki-dev/lesson-points-api/internal/middleware"
	"github.com/tsubaki-dev/lesson-points-api/internal/models"
	"github.com/tsubaki-dev/lesson-points-api/internal/repository"
	"github.com/tsubaki-dev/lesson-points-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	tokens *auth.TokenService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Household{},
		&models.Member{},
		&models.Lesson{},
		&models.Completion{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	householdRepo := repository.NewHouseholdRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	completionRepo := repository.NewCompletionRepository(db)

	tokens := auth.NewTokenService("test-secret")
	authService := services.NewAuthService(householdRepo, memberRepo, tokens)
	householdService := services.NewHouseholdService(householdRepo)
	memberService := services.NewMemberService(memberRepo)
	lessonService := services.NewLessonService(lessonRepo)
	completionService := services.NewCompletionService(completionRepo, lessonRepo)
	leaderboardService := services.NewLeaderboardService(memberRepo)

	router := gin.New()
	RegisterRoutes(router, Handlers{
		Auth:        NewAuthHandler(authService),
		Household:   NewHouseholdHandler(householdService),
		User:        NewUserHandler(memberService),
		Lesson:      NewLessonHandler(lessonService),
		Completion:  NewCompletionHandler(completionService),
		Leaderboard: NewLeaderboardHandler(leaderboardService),
	}, tokens, middleware.NewRateLimiter())

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testEnv{
		db:     db,
		router: router,
		tokens: tokens,
	}
}

// doJSON performs a request against the test router. A non-empty token is
// sent as a Bearer header.
func (env *testEnv) doJSON(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) register(t *testing.T, householdName, name, pin string) dto.AuthResponse {
	t.Helper()

	w := env.doJSON(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"household_name": householdName,
		"name":           name,
		"pin":            pin,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (env *testEnv) join(t *testing.T, joinCode, name, pin, role string) dto.AuthResponse {
	t.Helper()

	payload := map[string]string{
		"join_code": joinCode,
		"name":      name,
		"pin":       pin,
	}
	if role != "" {
		payload["role"] = role
	}

	w := env.doJSON(t, http.MethodPost, "/api/auth/join", "", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (env *testEnv) createLesson(t *testing.T, token, title, topic string, points int) dto.LessonDTO {
	t.Helper()

	w := env.doJSON(t, http.MethodPost, "/api/lessons", token, map[string]any{
		"title":  title,
		"topic":  topic,
		"points": points,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var lesson dto.LessonDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lesson))
	return lesson
}

func (env *testEnv) memberPoints(t *testing.T, token string, memberID uint64) int {
	t.Helper()

	w := env.doJSON(t, http.MethodGet, "/api/users/"+strconv.FormatUint(memberID, 10), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var member dto.MemberDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &member))
	return member.TotalPoints
}
