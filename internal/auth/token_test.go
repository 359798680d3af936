package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/tsubaki-dev/lesson-points-api/internal/models"
)

func testMember() *models.Member {
	return &models.Member{
		ID:          42,
		HouseholdID: 7,
		Role:        models.RoleParent,
	}
}

func TestTokenService_IssueAndParse(t *testing.T) {
	tokens := NewTokenService("test-secret")

	signed, err := tokens.Issue(testMember())
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := tokens.Parse(signed)
	require.NoError(t, err)
	require.Equal(t, uint64(42), claims.MemberID)
	require.Equal(t, uint64(7), claims.HouseholdID)
	require.Equal(t, models.RoleParent, claims.Role)
	require.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenService_Parse_WrongSecret(t *testing.T) {
	signed, err := NewTokenService("secret-a").Issue(testMember())
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Parse(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Parse_Expired(t *testing.T) {
	secret := "test-secret"

	claims := &Claims{
		MemberID:    42,
		HouseholdID: 7,
		Role:        models.RoleKid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenService(secret).Parse(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Parse_Garbage(t *testing.T) {
	_, err := NewTokenService("test-secret").Parse("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
