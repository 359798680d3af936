package repository

import (
	"github.com/tsubaki-dev/lesson-points-api/internal/models"
	"gorm.io/gorm"
)

// GormLessonRepository is a GORM implementation of LessonRepository
type GormLessonRepository struct {
	db *gorm.DB
}

// NewLessonRepository creates a new LessonRepository
func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &GormLessonRepository{db: db}
}

// Create creates a new lesson
func (r *GormLessonRepository) Create(lesson *models.Lesson) error {
	return r.db.Create(lesson).Error
}

// FindByID finds a lesson within a household
func (r *GormLessonRepository) FindByID(householdID, id uint64) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := r.db.Where("id = ? AND household_id = ?", id, householdID).
		First(&lesson).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// FindActiveByID finds an active lesson within a household
func (r *GormLessonRepository) FindActiveByID(householdID, id uint64) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := r.db.Where("id = ? AND household_id = ? AND is_active = ?", id, householdID, true).
		First(&lesson).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// ListActive lists active lessons, newest first, optionally topic-filtered
func (r *GormLessonRepository) ListActive(householdID uint64, topic string) ([]models.Lesson, error) {
	query := r.db.Where("household_id = ? AND is_active = ?", householdID, true)
	if topic != "" {
		query = query.Where("topic = ?", topic)
	}

	var lessons []models.Lesson
	if err := query.Order("created_at DESC").Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// Update updates a lesson
func (r *GormLessonRepository) Update(lesson *models.Lesson) error {
	return r.db.Save(lesson).Error
}
