package models

import "time"

type Lesson struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	HouseholdID uint64    `gorm:"not null;index" json:"household_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Topic       string    `gorm:"type:varchar(50);not null" json:"topic"`
	Points      int       `gorm:"not null" json:"points"`
	Icon        *string   `gorm:"type:varchar(50)" json:"icon"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Household Household `gorm:"foreignKey:HouseholdID" json:"household,omitempty"`
}
