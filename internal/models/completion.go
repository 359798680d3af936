package models

import "time"

type CompletionStatus string

const (
	CompletionPending  CompletionStatus = "pending"
	CompletionApproved CompletionStatus = "approved"
	CompletionRejected CompletionStatus = "rejected"
)

// Completion records one member doing one lesson. PointsAwarded is a
// snapshot of the lesson's point value at completion time and never changes
// afterwards, even if the lesson is edited. HouseholdID is denormalized from
// the lesson so tenant filtering never needs a join.
type Completion struct {
	ID            uint64           `gorm:"primarykey" json:"id"`
	LessonID      uint64           `gorm:"not null;index" json:"lesson_id"`
	MemberID      uint64           `gorm:"not null;index" json:"member_id"`
	HouseholdID   uint64           `gorm:"not null;index" json:"household_id"`
	Status        CompletionStatus `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`
	PointsAwarded int              `gorm:"not null" json:"points_awarded"`
	ApprovedByID  *uint64          `json:"approved_by_id"`
	CompletedAt   time.Time        `gorm:"not null;autoCreateTime" json:"completed_at"`

	// Relations
	Lesson     Lesson  `gorm:"foreignKey:LessonID" json:"lesson,omitempty"`
	Member     Member  `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	ApprovedBy *Member `gorm:"foreignKey:ApprovedByID" json:"approved_by,omitempty"`
}
