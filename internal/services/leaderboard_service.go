package services

import (
	"fmt"

	"github.com/tsubaki-dev/lesson-points-api/internal/models"
	"github.com/tsubaki-dev/lesson-points-api/internal/repository"
)

// LeaderboardService is a read-only ranking over household point totals.
type LeaderboardService struct {
	memberRepo repository.MemberRepository
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(memberRepo repository.MemberRepository) *LeaderboardService {
	return &LeaderboardService{
		memberRepo: memberRepo,
	}
}

// Leaderboard returns household members ordered by total points descending.
func (s *LeaderboardService) Leaderboard(householdID uint64) ([]models.Member, error) {
	members, err := s.memberRepo.ListByPoints(householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}
	return members, nil
}
