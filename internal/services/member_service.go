package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsubaki-dev/lesson-points-api/internal/auth"
	"github.com/tsubaki-dev/lesson-points-api/internal/models"
	"github.com/tsubaki-dev/lesson-points-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrProfileForbidden = errors.New("you can only update your own profile")
	ErrInvalidName      = errors.New("name cannot be empty")
)

// MemberService provides business logic for member profiles.
type MemberService struct {
	memberRepo repository.MemberRepository
}

// NewMemberService creates a new MemberService.
func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
	}
}

// List returns all members of the household ordered by name.
func (s *MemberService) List(householdID uint64) ([]models.Member, error) {
	members, err := s.memberRepo.ListByHousehold(householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// Get returns a single member of the household.
func (s *MemberService) Get(householdID, memberID uint64) (*models.Member, error) {
	member, err := s.memberRepo.FindByID(householdID, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find member: %w", err)
	}
	return member, nil
}

// UpdateProfileInput represents a partial profile update.
type UpdateProfileInput struct {
	Name      *string
	AvatarURL *string
}

// UpdateProfile updates a member's name or avatar. Members may update
// themselves; parents may update anyone in the household.
func (s *MemberService) UpdateProfile(scope auth.Scope, targetID uint64, input UpdateProfileInput) (*models.Member, error) {
	if !scope.IsParent() && scope.MemberID != targetID {
		return nil, ErrProfileForbidden
	}

	member, err := s.memberRepo.FindByID(scope.HouseholdID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find member: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrInvalidName
		}
		member.Name = name
	}
	if input.AvatarURL != nil {
		member.AvatarURL = input.AvatarURL
	}

	if err := s.memberRepo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return member, nil
}
