package repository

import (
	"errors"
	"fmt"

	"github.com/tsubaki-dev/lesson-points-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrCreateHousehold is returned when creating a household fails inside the registration transaction.
	ErrCreateHousehold = errors.New("household repository: create household failed")
	// ErrCreateFounder is returned when creating the founding member fails inside the registration transaction.
	ErrCreateFounder = errors.New("household repository: create founding member failed")
)

// GormHouseholdRepository is a GORM implementation of HouseholdRepository
type GormHouseholdRepository struct {
	db *gorm.DB
}

// NewHouseholdRepository creates a new HouseholdRepository
func NewHouseholdRepository(db *gorm.DB) HouseholdRepository {
	return &GormHouseholdRepository{db: db}
}

// CreateWithFounder creates the household and its founding parent atomically.
func (r *GormHouseholdRepository) CreateWithFounder(household *models.Household, founder *models.Member) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(household).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateHousehold, err)
		}

		founder.HouseholdID = household.ID

		if err := tx.Create(founder).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateFounder, err)
		}

		return nil
	})
}

// FindByID finds a household by ID
func (r *GormHouseholdRepository) FindByID(id uint64) (*models.Household, error) {
	var household models.Household
	if err := r.db.First(&household, id).Error; err != nil {
		return nil, err
	}
	return &household, nil
}

// FindByJoinCode finds a household by join code
func (r *GormHouseholdRepository) FindByJoinCode(code string) (*models.Household, error) {
	var household models.Household
	if err := r.db.Where("join_code = ?", code).First(&household).Error; err != nil {
		return nil, err
	}
	return &household, nil
}

// JoinCodeExists reports whether any household owns the given code
func (r *GormHouseholdRepository) JoinCodeExists(code string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Household{}).
		Where("join_code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates a household
func (r *GormHouseholdRepository) Update(household *models.Household) error {
	return r.db.Save(household).Error
}

// Counts returns the member and lesson counts for a household
func (r *GormHouseholdRepository) Counts(id uint64) (int64, int64, error) {
	var members, lessons int64

	if err := r.db.Model(&models.Member{}).
		Where("household_id = ?", id).
		Count(&members).Error; err != nil {
		return 0, 0, err
	}

	if err := r.db.Model(&models.Lesson{}).
		Where("household_id = ?", id).
		Count(&lessons).Error; err != nil {
		return 0, 0, err
	}

	return members, lessons, nil
}
