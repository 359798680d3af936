package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsubaki-dev/lesson-points-api/internal/models"
	"github.com/tsubaki-dev/lesson-points-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrHouseholdNotFound    = errors.New("household not found")
	ErrInvalidHouseholdName = errors.New("household name cannot be empty")
)

// HouseholdService provides business logic for household operations.
type HouseholdService struct {
	householdRepo repository.HouseholdRepository
}

// NewHouseholdService creates a new HouseholdService.
func NewHouseholdService(householdRepo repository.HouseholdRepository) *HouseholdService {
	return &HouseholdService{
		householdRepo: householdRepo,
	}
}

// HouseholdSummary bundles a household with its member and lesson counts.
type HouseholdSummary struct {
	Household   *models.Household
	MemberCount int64
	LessonCount int64
}

// Get returns the household with its counts.
func (s *HouseholdService) Get(householdID uint64) (*HouseholdSummary, error) {
	household, err := s.householdRepo.FindByID(householdID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseholdNotFound
		}
		return nil, fmt.Errorf("failed to find household: %w", err)
	}

	members, lessons, err := s.householdRepo.Counts(householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to count household contents: %w", err)
	}

	return &HouseholdSummary{
		Household:   household,
		MemberCount: members,
		LessonCount: lessons,
	}, nil
}

// Rename updates the household's display name.
func (s *HouseholdService) Rename(householdID uint64, name string) (*models.Household, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidHouseholdName
	}

	household, err := s.householdRepo.FindByID(householdID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseholdNotFound
		}
		return nil, fmt.Errorf("failed to find household: %w", err)
	}

	household.Name = name
	if err := s.householdRepo.Update(household); err != nil {
		return nil, fmt.Errorf("failed to update household: %w", err)
	}

	return household, nil
}
