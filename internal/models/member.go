package models

import "time"

type MemberRole string

const (
	RoleParent MemberRole = "parent"
	RoleKid    MemberRole = "kid"
)

// Member is a person within a household. Names are unique per household,
// not globally. TotalPoints is a running total maintained by the completion
// workflow and may go negative after a rejection.
type Member struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	HouseholdID uint64     `gorm:"not null;uniqueIndex:idx_members_household_name" json:"household_id"`
	Name        string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_members_household_name" json:"name"`
	PinHash     string     `gorm:"type:varchar(255);not null" json:"-"`
	Role        MemberRole `gorm:"type:varchar(10);not null" json:"role"`
	AvatarURL   *string    `gorm:"type:varchar(255)" json:"avatar_url"`
	TotalPoints int        `gorm:"not null;default:0" json:"total_points"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	Household   Household    `gorm:"foreignKey:HouseholdID" json:"household,omitempty"`
	Completions []Completion `gorm:"foreignKey:MemberID" json:"-"`
}
