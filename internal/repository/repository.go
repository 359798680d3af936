package repository

import (
	"github.com/tsubaki-dev/lesson-points-api/internal/models"
)

// HouseholdRepository defines the interface for household data access
type HouseholdRepository interface {
	// CreateWithFounder creates a household and its first parent member
	// within a single transaction.
	CreateWithFounder(household *models.Household, founder *models.Member) error

	// FindByID finds a household by ID
	FindByID(id uint64) (*models.Household, error)

	// FindByJoinCode finds a household by join code
	FindByJoinCode(code string) (*models.Household, error)

	// JoinCodeExists reports whether any household owns the given code
	JoinCodeExists(code string) (bool, error)

	// Update updates a household
	Update(household *models.Household) error

	// Counts returns the member and lesson counts for a household
	Counts(id uint64) (members int64, lessons int64, err error)
}

// MemberRepository defines the interface for member data access
type MemberRepository interface {
	// Create creates a new member
	Create(member *models.Member) error

	// FindByID finds a member within a household
	FindByID(householdID, id uint64) (*models.Member, error)

	// FindByName finds all members with the given display name across
	// households, with their households preloaded. Names are only unique
	// per household, so login has to consider every match.
	FindByName(name string) ([]models.Member, error)

	// ExistsByName reports whether a member with the name exists in the household
	ExistsByName(householdID uint64, name string) (bool, error)

	// ListByHousehold lists household members ordered by name
	ListByHousehold(householdID uint64) ([]models.Member, error)

	// ListByPoints lists household members ordered by total points descending
	ListByPoints(householdID uint64) ([]models.Member, error)

	// Update updates a member
	Update(member *models.Member) error
}

// LessonRepository defines the interface for lesson data access
type LessonRepository interface {
	// Create creates a new lesson
	Create(lesson *models.Lesson) error

	// FindByID finds a lesson within a household
	FindByID(householdID, id uint64) (*models.Lesson, error)

	// FindActiveByID finds an active lesson within a household
	FindActiveByID(householdID, id uint64) (*models.Lesson, error)

	// ListActive lists active lessons, newest first, optionally topic-filtered
	ListActive(householdID uint64, topic string) ([]models.Lesson, error)

	// Update updates a lesson
	Update(lesson *models.Lesson) error
}

// CompletionFilter holds filtering options for listing completions
type CompletionFilter struct {
	HouseholdID uint64
	MemberID    *uint64
	Status      *models.CompletionStatus
}

// CompletionRepository defines the interface for completion data access
type CompletionRepository interface {
	// CreateWithPointCredit inserts the completion and credits the member's
	// running point total in one transaction.
	CreateWithPointCredit(completion *models.Completion) error

	// Approve flips a pending completion to approved, recording the
	// adjudicating parent. Returns gorm.ErrRecordNotFound if no pending
	// completion matches within the household.
	Approve(householdID, completionID, parentID uint64) (*models.Completion, error)

	// Reject flips a pending completion to rejected and reverses the
	// optimistic point credit in the same transaction. Same not-found
	// semantics as Approve.
	Reject(householdID, completionID, parentID uint64) (*models.Completion, error)

	// List lists completions matching the filter, most recent first, with
	// lesson, member, and adjudicator preloaded.
	List(filter CompletionFilter) ([]models.Completion, error)
}
