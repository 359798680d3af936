package dto

import (
	"time"

	"github.com/tsubaki-dev/lesson-points-api/internal/models"
)

// MemberDTO represents a member in API responses. The PIN hash never
// leaves the models package.
type MemberDTO struct {
	ID          uint64            `json:"id"`
	Name        string            `json:"name"`
	Role        models.MemberRole `json:"role"`
	AvatarURL   *string           `json:"avatar_url"`
	TotalPoints int               `json:"total_points"`
	HouseholdID uint64            `json:"household_id"`
	CreatedAt   time.Time         `json:"created_at"`
}

// MemberSummaryDTO is the short form embedded in completion responses.
type MemberSummaryDTO struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// LeaderboardEntryDTO is one row of the household ranking.
type LeaderboardEntryDTO struct {
	ID          uint64            `json:"id"`
	Name        string            `json:"name"`
	AvatarURL   *string           `json:"avatar_url"`
	Role        models.MemberRole `json:"role"`
	TotalPoints int               `json:"total_points"`
}

// ToMemberDTO converts a Member model to MemberDTO
func ToMemberDTO(member models.Member) MemberDTO {
	return MemberDTO{
		ID:          member.ID,
		Name:        member.Name,
		Role:        member.Role,
		AvatarURL:   member.AvatarURL,
		TotalPoints: member.TotalPoints,
		HouseholdID: member.HouseholdID,
		CreatedAt:   member.CreatedAt,
	}
}

// ToMemberSummaryDTO converts a Member model to its short form
func ToMemberSummaryDTO(member models.Member) MemberSummaryDTO {
	return MemberSummaryDTO{
		ID:        member.ID,
		Name:      member.Name,
		AvatarURL: member.AvatarURL,
	}
}

// ToLeaderboardEntryDTO converts a Member model to a ranking row
func ToLeaderboardEntryDTO(member models.Member) LeaderboardEntryDTO {
	return LeaderboardEntryDTO{
		ID:          member.ID,
		Name:        member.Name,
		AvatarURL:   member.AvatarURL,
		Role:        member.Role,
		TotalPoints: member.TotalPoints,
	}
}
