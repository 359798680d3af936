package dto

import (
	"time"

	"github.com/tsubaki-dev/lesson-points-api/internal/models"
)

// CompletionDTO represents a completion in API responses
type CompletionDTO struct {
	ID            uint64                  `json:"id"`
	LessonID      uint64                  `json:"lesson_id"`
	MemberID      uint64                  `json:"member_id"`
	Status        models.CompletionStatus `json:"status"`
	PointsAwarded int                     `json:"points_awarded"`
	CompletedAt   time.Time               `json:"completed_at"`
	Lesson        *LessonSummaryDTO       `json:"lesson,omitempty"`
	Member        *MemberSummaryDTO       `json:"member,omitempty"`
	ApprovedBy    *MemberSummaryDTO       `json:"approved_by,omitempty"`
}

// ToCompletionDTO converts a Completion model to CompletionDTO. Relations
// appear only when they were preloaded.
func ToCompletionDTO(completion models.Completion) CompletionDTO {
	result := CompletionDTO{
		ID:            completion.ID,
		LessonID:      completion.LessonID,
		MemberID:      completion.MemberID,
		Status:        completion.Status,
		PointsAwarded: completion.PointsAwarded,
		CompletedAt:   completion.CompletedAt,
	}

	if completion.Lesson.ID != 0 {
		lesson := ToLessonSummaryDTO(completion.Lesson)
		result.Lesson = &lesson
	}
	if completion.Member.ID != 0 {
		member := ToMemberSummaryDTO(completion.Member)
		result.Member = &member
	}
	if completion.ApprovedBy != nil {
		approvedBy := MemberSummaryDTO{
			ID:   completion.ApprovedBy.ID,
			Name: completion.ApprovedBy.Name,
		}
		result.ApprovedBy = &approvedBy
	}

	return result
}

// ToCompletionDTOs converts a slice of completions
func ToCompletionDTOs(completions []models.Completion) []CompletionDTO {
	dtos := make([]CompletionDTO, len(completions))
	for i, completion := range completions {
		dtos[i] = ToCompletionDTO(completion)
	}
	return dtos
}
