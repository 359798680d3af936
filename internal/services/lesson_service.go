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
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrLessonTitleMissing = errors.New("title, topic, and points are required")
	ErrInvalidTopic       = errors.New("unknown topic")
	ErrInvalidPoints      = errors.New("points must be a positive number")
)

// Topics is the fixed set of lesson topics.
var Topics = []string{
	"Reading",
	"Math",
	"Science",
	"Art",
	"Music",
	"Geography",
	"Writing",
	"History",
	"Language",
}

func isValidTopic(topic string) bool {
	for _, t := range Topics {
		if t == topic {
			return true
		}
	}
	return false
}

// LessonService provides business logic for the lesson catalog.
type LessonService struct {
	lessonRepo repository.LessonRepository
}

// NewLessonService creates a new LessonService.
func NewLessonService(lessonRepo repository.LessonRepository) *LessonService {
	return &LessonService{
		lessonRepo: lessonRepo,
	}
}

// List returns the household's active lessons, newest first. A non-empty
// topic filters by exact match.
func (s *LessonService) List(householdID uint64, topic string) ([]models.Lesson, error) {
	lessons, err := s.lessonRepo.ListActive(householdID, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	return lessons, nil
}

// CreateLessonInput represents input for creating a lesson.
type CreateLessonInput struct {
	Title       string
	Description *string
	Topic       string
	Points      int
	Icon        *string
}

// Create adds a lesson to the household catalog.
func (s *LessonService) Create(householdID uint64, input CreateLessonInput) (*models.Lesson, error) {
	if strings.TrimSpace(input.Title) == "" || input.Topic == "" {
		return nil, ErrLessonTitleMissing
	}
	if !isValidTopic(input.Topic) {
		return nil, ErrInvalidTopic
	}
	if input.Points <= 0 {
		return nil, ErrInvalidPoints
	}

	lesson := &models.Lesson{
		HouseholdID: householdID,
		Title:       input.Title,
		Description: input.Description,
		Topic:       input.Topic,
		Points:      input.Points,
		Icon:        input.Icon,
		IsActive:    true,
	}

	if err := s.lessonRepo.Create(lesson); err != nil {
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}

	return lesson, nil
}

// UpdateLessonInput represents a partial lesson update.
type UpdateLessonInput struct {
	Title       *string
	Description *string
	Topic       *string
	Points      *int
	Icon        *string
	IsActive    *bool
}

// Update applies the supplied fields to a lesson. Cross-tenant lessons are
// reported identically to absent ones.
func (s *LessonService) Update(householdID, lessonID uint64, input UpdateLessonInput) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.FindByID(householdID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("failed to find lesson: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrLessonTitleMissing
		}
		lesson.Title = *input.Title
	}
	if input.Description != nil {
		lesson.Description = input.Description
	}
	if input.Topic != nil {
		if !isValidTopic(*input.Topic) {
			return nil, ErrInvalidTopic
		}
		lesson.Topic = *input.Topic
	}
	if input.Points != nil {
		if *input.Points <= 0 {
			return nil, ErrInvalidPoints
		}
		lesson.Points = *input.Points
	}
	if input.Icon != nil {
		lesson.Icon = input.Icon
	}
	if input.IsActive != nil {
		lesson.IsActive = *input.IsActive
	}

	if err := s.lessonRepo.Update(lesson); err != nil {
		return nil, fmt.Errorf("failed to update lesson: %w", err)
	}

	return lesson, nil
}

// Deactivate soft-deletes a lesson so it no longer appears in the catalog
// and can no longer be completed. Historical completions keep their point
// snapshots.
func (s *LessonService) Deactivate(householdID, lessonID uint64) error {
	lesson, err := s.lessonRepo.FindByID(householdID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLessonNotFound
		}
		return fmt.Errorf("failed to find lesson: %w", err)
	}

	lesson.IsActive = false
	if err := s.lessonRepo.Update(lesson); err != nil {
		return fmt.Errorf("failed to deactivate lesson: %w", err)
	}

	return nil
}
