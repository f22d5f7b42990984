package services

import (
	"time"

	"github.com/alimgiray/gitfolio/internal/models"
)

const (
	// countUpDuration and countUpSteps drive the cosmetic count-up effect:
	// 30 linear frames over one second.
	countUpDuration = time.Second
	countUpSteps    = 30
)

// StatsService reduces the fetched data into the displayed aggregates
type StatsService struct{}

func NewStatsService() *StatsService {
	return &StatsService{}
}

// ComputeStats sums stars and forks over the full fetched repository list.
// The active filter and the display cap have no effect on these totals.
func (s *StatsService) ComputeStats(profile *models.Profile, repositories []*models.Repository) *models.PortfolioStats {
	stats := &models.PortfolioStats{
		RepoCount:     profile.PublicRepos,
		FollowerCount: profile.Followers,
	}

	for _, repo := range repositories {
		stats.StarTotal += repo.Stars
		stats.ForkTotal += repo.Forks
	}

	return stats
}

// CountUpFrames returns the frame values for animating a counter from 0 to
// target. Intermediate frames are floor-rounded and never exceed the target;
// the terminal frame is always the exact target value.
func (s *StatsService) CountUpFrames(target int) []int {
	frames := make([]int, countUpSteps)
	for i := 1; i <= countUpSteps; i++ {
		frames[i-1] = target * i / countUpSteps
	}
	frames[countUpSteps-1] = target
	return frames
}

// FrameInterval is the delay between two count-up frames
func (s *StatsService) FrameInterval() time.Duration {
	return countUpDuration / countUpSteps
}
