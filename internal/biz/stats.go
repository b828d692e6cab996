package biz

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
)

// StatsUseCase handles catalog-wide aggregations and store introspection.
type StatsUseCase struct {
	repo StatsRepo
	log  *log.Helper
}

// NewStatsUseCase creates a new StatsUseCase instance
func NewStatsUseCase(repo StatsRepo, logger log.Logger) *StatsUseCase {
	return &StatsUseCase{
		repo: repo,
		log:  log.NewHelper(logger),
	}
}

// GenreDistribution tallies genre occurrences across the whole catalog and
// returns the topN most frequent.
func (uc *StatsUseCase) GenreDistribution(ctx context.Context, topN int) ([]*GenreCount, error) {
	rows, err := uc.repo.GenreDistribution(ctx, topN)
	if err != nil {
		return nil, fmt.Errorf("failed to build genre distribution: %w", err)
	}
	return rows, nil
}

// RuntimeDistribution buckets known runtimes into fixed bins.
func (uc *StatsUseCase) RuntimeDistribution(ctx context.Context) (*RuntimeDistribution, error) {
	dist, err := uc.repo.RuntimeDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build runtime distribution: %w", err)
	}
	return dist, nil
}

// RatingVotesSample collects up to maxPoints (votes, rating) pairs for the
// scatter view.
func (uc *StatsUseCase) RatingVotesSample(ctx context.Context, maxPoints int) ([]*RatingPoint, error) {
	points, err := uc.repo.RatingVotesSample(ctx, maxPoints)
	if err != nil {
		return nil, fmt.Errorf("failed to sample ratings: %w", err)
	}
	return points, nil
}

// Status reports store reachability plus basic memory and key usage. The
// repo renders an unreachable store as a status, so errors here are
// unexpected plumbing failures only.
func (uc *StatsUseCase) Status(ctx context.Context) (*StoreStatus, error) {
	status, err := uc.repo.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read store status: %w", err)
	}
	return status, nil
}
