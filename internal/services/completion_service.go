package services

import (
	"errors"
	"fmt"

	"github.com/tsubaki-dev/lesson-points-api/internal/auth"
	"github.com/tsubaki-dev/lesson-points-api/internal/models"
	"github.com/tsubaki-dev/lesson-points-api/internal/repository"
	"gorm.io/gorm"
)

var (
	// ErrCompletionNotFound covers absent, cross-tenant, and already
	// adjudicated completions alike.
	ErrCompletionNotFound = errors.New("pending completion not found")
)

// CompletionService runs the completion workflow: a member marks a lesson
// done, points are credited immediately, and a parent later approves or
// rejects. Rejection reverses the credit; approval only records the audit.
type CompletionService struct {
	completionRepo repository.CompletionRepository
	lessonRepo     repository.LessonRepository
}

// NewCompletionService creates a new CompletionService.
func NewCompletionService(completionRepo repository.CompletionRepository, lessonRepo repository.LessonRepository) *CompletionService {
	return &CompletionService{
		completionRepo: completionRepo,
		lessonRepo:     lessonRepo,
	}
}

// Complete records a member finishing an active lesson. The lesson's current
// point value is snapshotted onto the completion and credited to the member
// right away; parental review can only claw it back, never withhold it.
func (s *CompletionService) Complete(householdID, memberID, lessonID uint64) (*models.Completion, error) {
	lesson, err := s.lessonRepo.FindActiveByID(householdID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("failed to find lesson: %w", err)
	}

	completion := &models.Completion{
		LessonID:      lesson.ID,
		MemberID:      memberID,
		HouseholdID:   householdID,
		Status:        models.CompletionPending,
		PointsAwarded: lesson.Points,
	}

	if err := s.completionRepo.CreateWithPointCredit(completion); err != nil {
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}

	// Attach the lesson after the insert so the response embeds it without
	// the create touching the association.
	completion.Lesson = *lesson
	return completion, nil
}

// Approve marks a pending completion approved. Points were already credited
// at completion time, so nothing changes on the member.
func (s *CompletionService) Approve(householdID, parentID, completionID uint64) (*models.Completion, error) {
	completion, err := s.completionRepo.Approve(householdID, completionID, parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompletionNotFound
		}
		return nil, fmt.Errorf("failed to approve completion: %w", err)
	}
	return completion, nil
}

// Reject marks a pending completion rejected and removes the points that
// were credited optimistically. The stored snapshot is used, so later edits
// to the lesson's point value never change the reversal amount. The member's
// total may go negative; that is accepted.
func (s *CompletionService) Reject(householdID, parentID, completionID uint64) (*models.Completion, error) {
	completion, err := s.completionRepo.Reject(householdID, completionID, parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompletionNotFound
		}
		return nil, fmt.Errorf("failed to reject completion: %w", err)
	}
	return completion, nil
}

// ListInput represents filters for listing completions.
type ListInput struct {
	Status   *models.CompletionStatus
	MemberID *uint64
}

// List returns household completions, most recent first. Kid callers are
// restricted to their own completions regardless of any member filter.
func (s *CompletionService) List(scope auth.Scope, input ListInput) ([]models.Completion, error) {
	filter := repository.CompletionFilter{
		HouseholdID: scope.HouseholdID,
		Status:      input.Status,
		MemberID:    input.MemberID,
	}

	if !scope.IsParent() {
		self := scope.MemberID
		filter.MemberID = &self
	}

	completions, err := s.completionRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	return completions, nil
}
