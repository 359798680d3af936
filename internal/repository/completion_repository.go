package repository

import (
	"github.com/tsubaki-dev/lesson-points-api/internal/models"
	"gorm.io/gorm"
)

// GormCompletionRepository is a GORM implementation of CompletionRepository
type GormCompletionRepository struct {
	db *gorm.DB
}

// NewCompletionRepository creates a new CompletionRepository
func NewCompletionRepository(db *gorm.DB) CompletionRepository {
	return &GormCompletionRepository{db: db}
}

// CreateWithPointCredit inserts the completion and credits the member's
// running total atomically. A partial apply would break the invariant that
// the total equals the sum of pending and approved completions.
func (r *GormCompletionRepository) CreateWithPointCredit(completion *models.Completion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(completion).Error; err != nil {
			return err
		}

		return tx.Model(&models.Member{}).
			Where("id = ?", completion.MemberID).
			UpdateColumn("total_points", gorm.Expr("total_points + ?", completion.PointsAwarded)).
			Error
	})
}

// Approve flips a pending completion to approved. The guarded update doubles
// as the concurrency control: a second adjudication sees zero rows affected
// and reports record-not-found instead of double-applying.
func (r *GormCompletionRepository) Approve(householdID, completionID, parentID uint64) (*models.Completion, error) {
	return r.adjudicate(householdID, completionID, parentID, models.CompletionApproved, false)
}

// Reject flips a pending completion to rejected and reverses the credited
// points using the stored snapshot, not the lesson's current value.
func (r *GormCompletionRepository) Reject(householdID, completionID, parentID uint64) (*models.Completion, error) {
	return r.adjudicate(householdID, completionID, parentID, models.CompletionRejected, true)
}

func (r *GormCompletionRepository) adjudicate(householdID, completionID, parentID uint64, status models.CompletionStatus, reversePoints bool) (*models.Completion, error) {
	var completion models.Completion

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Completion{}).
			Where("id = ? AND household_id = ? AND status = ?", completionID, householdID, models.CompletionPending).
			Updates(map[string]interface{}{
				"status":         status,
				"approved_by_id": parentID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Absent, cross-tenant, or no longer pending: all reported alike.
			return gorm.ErrRecordNotFound
		}

		if err := tx.Preload("Lesson").Preload("Member").Preload("ApprovedBy").
			First(&completion, completionID).Error; err != nil {
			return err
		}

		if reversePoints {
			if err := tx.Model(&models.Member{}).
				Where("id = ?", completion.MemberID).
				UpdateColumn("total_points", gorm.Expr("total_points - ?", completion.PointsAwarded)).
				Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &completion, nil
}

// List lists completions matching the filter, most recent first
func (r *GormCompletionRepository) List(filter CompletionFilter) ([]models.Completion, error) {
	query := r.db.Where("household_id = ?", filter.HouseholdID)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.MemberID != nil {
		query = query.Where("member_id = ?", *filter.MemberID)
	}

	var completions []models.Completion
	if err := query.
		Preload("Lesson").
		Preload("Member").
		Preload("ApprovedBy").
		Order("completed_at DESC").
		Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}
