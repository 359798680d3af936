package repository

import (
	"github.com/tsubaki-dev/lesson-points-api/internal/models"
	"gorm.io/gorm"
)

// GormMemberRepository is a GORM implementation of MemberRepository
type GormMemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &GormMemberRepository{db: db}
}

// Create creates a new member
func (r *GormMemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// FindByID finds a member within a household. Cross-tenant ids surface as
// record-not-found, identical to absent ones.
func (r *GormMemberRepository) FindByID(householdID, id uint64) (*models.Member, error) {
	var member models.Member
	if err := r.db.Where("id = ? AND household_id = ?", id, householdID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByName finds all members with the given name across households
func (r *GormMemberRepository) FindByName(name string) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.Preload("Household").
		Where("name = ?", name).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ExistsByName reports whether a member with the name exists in the household
func (r *GormMemberRepository) ExistsByName(householdID uint64, name string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Member{}).
		Where("household_id = ? AND name = ?", householdID, name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByHousehold lists household members ordered by name
func (r *GormMemberRepository) ListByHousehold(householdID uint64) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.Where("household_id = ?", householdID).
		Order("name ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListByPoints lists household members ordered by total points descending.
// Ties break on member id ascending so the ordering is stable.
func (r *GormMemberRepository) ListByPoints(householdID uint64) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.Where("household_id = ?", householdID).
		Order("total_points DESC, id ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Update updates a member
func (r *GormMemberRepository) Update(member *models.Member) error {
	return r.db.Save(member).Error
}
