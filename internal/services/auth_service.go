package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsubaki-dev/lesson-points-api/internal/auth"
	"github.com/tsubaki-dev/lesson-points-api/internal/constants"
	"github.com/tsubaki-dev/lesson-points-api/internal/models"
	"github.com/tsubaki-dev/lesson-points-api/internal/repository"
	"github.com/tsubaki-dev/lesson-points-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrFieldsRequired       = errors.New("household name, name, and PIN are required")
	ErrPinTooShort          = errors.New("PIN must be at least 4 characters")
	ErrInvalidCredentials   = errors.New("invalid name or PIN")
	ErrInvalidJoinCode      = errors.New("invalid join code")
	ErrNameTaken            = errors.New("a member with that name already exists in this household")
	ErrJoinCodeExhausted    = errors.New("could not generate unique join code")
	ErrFailedToHashPin      = errors.New("failed to hash PIN")
	ErrFailedToCreateMember = errors.New("failed to create member")
)

// AuthService handles registration, household joining, and login.
type AuthService struct {
	householdRepo repository.HouseholdRepository
	memberRepo    repository.MemberRepository
	tokens        *auth.TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(householdRepo repository.HouseholdRepository, memberRepo repository.MemberRepository, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		householdRepo: householdRepo,
		memberRepo:    memberRepo,
		tokens:        tokens,
	}
}

// AuthResult is returned by every operation that establishes a session.
type AuthResult struct {
	Token     string
	Member    *models.Member
	Household *models.Household
}

// RegisterInput represents the required information to create a household.
type RegisterInput struct {
	HouseholdName string
	FounderName   string
	Pin           string
}

// Register creates a new household and its founding parent member.
func (s *AuthService) Register(input RegisterInput) (*AuthResult, error) {
	householdName := strings.TrimSpace(input.HouseholdName)
	founderName := strings.TrimSpace(input.FounderName)
	if householdName == "" || founderName == "" || input.Pin == "" {
		return nil, ErrFieldsRequired
	}
	if len(input.Pin) < constants.MinPinLength {
		return nil, ErrPinTooShort
	}

	joinCode, err := s.allocateJoinCode()
	if err != nil {
		return nil, err
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(input.Pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPin
	}

	household := &models.Household{
		Name:     householdName,
		JoinCode: joinCode,
	}
	founder := &models.Member{
		Name:    founderName,
		PinHash: string(pinHash),
		Role:    models.RoleParent,
	}

	if err := s.householdRepo.CreateWithFounder(household, founder); err != nil {
		return nil, fmt.Errorf("failed to complete registration: %w", err)
	}

	return s.newAuthResult(founder, household)
}

// JoinInput represents the information needed to join an existing household.
type JoinInput struct {
	JoinCode  string
	Name      string
	Pin       string
	AvatarURL *string
	Role      string
}

// Join resolves the join code and adds a new member to that household.
// Role defaults to kid unless explicitly "parent".
func (s *AuthService) Join(input JoinInput) (*AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	if input.JoinCode == "" || name == "" || input.Pin == "" {
		return nil, ErrFieldsRequired
	}
	if len(input.Pin) < constants.MinPinLength {
		return nil, ErrPinTooShort
	}

	household, err := s.householdRepo.FindByJoinCode(strings.ToUpper(input.JoinCode))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidJoinCode
		}
		return nil, fmt.Errorf("failed to find household by join code: %w", err)
	}

	taken, err := s.memberRepo.ExistsByName(household.ID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check member name: %w", err)
	}
	if taken {
		return nil, ErrNameTaken
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(input.Pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPin
	}

	role := models.RoleKid
	if input.Role == string(models.RoleParent) {
		role = models.RoleParent
	}

	member := &models.Member{
		HouseholdID: household.ID,
		Name:        name,
		PinHash:     string(pinHash),
		Role:        role,
		AvatarURL:   input.AvatarURL,
	}

	if err := s.memberRepo.Create(member); err != nil {
		return nil, ErrFailedToCreateMember
	}

	return s.newAuthResult(member, household)
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Name string
	Pin  string
}

// Login verifies name + PIN. Display names are only unique per household,
// so every member carrying the name is checked; the first PIN match wins.
// Unknown names and wrong PINs fail identically.
func (s *AuthService) Login(input LoginInput) (*AuthResult, error) {
	if input.Name == "" || input.Pin == "" {
		return nil, ErrFieldsRequired
	}

	candidates, err := s.memberRepo.FindByName(input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to find members: %w", err)
	}

	for i := range candidates {
		member := &candidates[i]
		if bcrypt.CompareHashAndPassword([]byte(member.PinHash), []byte(input.Pin)) == nil {
			household := member.Household
			return s.newAuthResult(member, &household)
		}
	}

	return nil, ErrInvalidCredentials
}

func (s *AuthService) newAuthResult(member *models.Member, household *models.Household) (*AuthResult, error) {
	token, err := s.tokens.Issue(member)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{
		Token:     token,
		Member:    member,
		Household: household,
	}, nil
}

// allocateJoinCode generates a code and retries on collision. The code space
// is around a billion values, so exhaustion is a server fault, not expected.
func (s *AuthService) allocateJoinCode() (string, error) {
	for attempt := 0; attempt < constants.JoinCodeMaxAttempts; attempt++ {
		code, err := utils.GenerateJoinCode()
		if err != nil {
			return "", fmt.Errorf("failed to generate join code: %w", err)
		}

		exists, err := s.householdRepo.JoinCodeExists(code)
		if err != nil {
			return "", fmt.Errorf("failed to check join code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", ErrJoinCodeExhausted
}
