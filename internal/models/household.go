package models

import (
	"time"
)

type Household struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	JoinCode  string    `gorm:"type:varchar(12);uniqueIndex;not null" json:"join_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Members []Member `gorm:"foreignKey:HouseholdID" json:"members,omitempty"`
	Lessons []Lesson `gorm:"foreignKey:HouseholdID" json:"lessons,omitempty"`
}
