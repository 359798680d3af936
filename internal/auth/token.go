package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tsubaki-dev/lesson-points-api/internal/models"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("token expired or invalid")

// Scope is the verified identity a request acts under. Every data operation
// downstream is filtered by HouseholdID; a Scope cannot exist without one
// because the auth middleware rejects tokens missing it.
type Scope struct {
	MemberID    uint64
	HouseholdID uint64
	Role        models.MemberRole
}

// IsParent reports whether the acting member holds the parent role.
func (s Scope) IsParent() bool {
	return s.Role == models.RoleParent
}

// Claims is the JWT payload carried by session tokens.
type Claims struct {
	MemberID    uint64            `json:"member_id"`
	HouseholdID uint64            `json:"household_id"`
	Role        models.MemberRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token for the member, valid for TokenTTL.
func (s *TokenService) Issue(member *models.Member) (string, error) {
	now := time.Now()
	claims := &Claims{
		MemberID:    member.ID,
		HouseholdID: member.HouseholdID,
		Role:        member.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies a token string and returns its claims.
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
