package dto

import (
	"time"

	"github.com/tsubaki-dev/lesson-points-api/internal/models"
)

// LessonDTO represents a lesson in API responses
type LessonDTO struct {
	ID          uint64    `json:"id"`
	HouseholdID uint64    `json:"household_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Topic       string    `json:"topic"`
	Points      int       `json:"points"`
	Icon        *string   `json:"icon"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LessonSummaryDTO is the short form embedded in completion responses
type LessonSummaryDTO struct {
	Title  string  `json:"title"`
	Topic  string  `json:"topic"`
	Icon   *string `json:"icon,omitempty"`
	Points int     `json:"points"`
}

// ToLessonDTO converts a Lesson model to LessonDTO
func ToLessonDTO(lesson models.Lesson) LessonDTO {
	return LessonDTO{
		ID:          lesson.ID,
		HouseholdID: lesson.HouseholdID,
		Title:       lesson.Title,
		Description: lesson.Description,
		Topic:       lesson.Topic,
		Points:      lesson.Points,
		Icon:        lesson.Icon,
		IsActive:    lesson.IsActive,
		CreatedAt:   lesson.CreatedAt,
		UpdatedAt:   lesson.UpdatedAt,
	}
}

// ToLessonDTOs converts a slice of lessons
func ToLessonDTOs(lessons []models.Lesson) []LessonDTO {
	dtos := make([]LessonDTO, len(lessons))
	for i, lesson := range lessons {
		dtos[i] = ToLessonDTO(lesson)
	}
	return dtos
}

// ToLessonSummaryDTO converts a Lesson model to its short form
func ToLessonSummaryDTO(lesson models.Lesson) LessonSummaryDTO {
	return LessonSummaryDTO{
		Title:  lesson.Title,
		Topic:  lesson.Topic,
		Icon:   lesson.Icon,
		Points: lesson.Points,
	}
}
