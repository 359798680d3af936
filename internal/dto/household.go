package dto

import (
	"github.com/tsubaki-dev/lesson-points-api/internal/models"
)

// HouseholdDTO represents a household in API responses
type HouseholdDTO struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	JoinCode string `json:"join_code"`
}

// HouseholdDetailDTO adds aggregate counts for the household screen
type HouseholdDetailDTO struct {
	HouseholdDTO
	MemberCount int64 `json:"member_count"`
	LessonCount int64 `json:"lesson_count"`
}

// AuthResponse is the shape returned by register, join, and login
type AuthResponse struct {
	Token     string       `json:"token"`
	User      MemberDTO    `json:"user"`
	Household HouseholdDTO `json:"household"`
}

// ToHouseholdDTO converts a Household model to HouseholdDTO
func ToHouseholdDTO(household models.Household) HouseholdDTO {
	return HouseholdDTO{
		ID:       household.ID,
		Name:     household.Name,
		JoinCode: household.JoinCode,
	}
}

// ToHouseholdDetailDTO converts a household with counts to its detail form
func ToHouseholdDetailDTO(household models.Household, memberCount, lessonCount int64) HouseholdDetailDTO {
	return HouseholdDetailDTO{
		HouseholdDTO: ToHouseholdDTO(household),
		MemberCount:  memberCount,
		LessonCount:  lessonCount,
	}
}
