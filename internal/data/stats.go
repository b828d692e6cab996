package data

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/squadronxfr/redis-tp-ipssi/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

// runtimeBucketLabels name the histogram ranges in minutes. All buckets but
// the last are half-open; the last one is open-ended.
var runtimeBucketLabels = []string{"≤60", "60–90", "90–120", "120–150", "150–180", "180–240", ">240"}

type statsRepo struct {
	data *Data
	log  *log.Helper
}

// NewStatsRepo creates a new stats repository
func NewStatsRepo(data *Data, logger log.Logger) biz.StatsRepo {
	return &statsRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *statsRepo) GenreDistribution(ctx context.Context, topN int) ([]*biz.GenreCount, error) {
	if topN <= 0 {
		topN = biz.DefaultGenreBuckets
	}

	keys, err := r.data.rdb.SMembers(ctx, keyMovies).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate movie set: %w", err)
	}

	tally := make(map[string]int64)
	for row, err := range r.data.fetchFields(ctx, keys, []string{"genres"}, defaultScanBatch) {
		if err != nil {
			return nil, err
		}
		for _, g := range parseGenres(row.Values[0]) {
			name := strings.TrimSpace(g.Name)
			if name == "" {
				continue
			}
			tally[name]++
		}
	}

	counts := make([]*biz.GenreCount, 0, len(tally))
	for name, n := range tally {
		counts = append(counts, &biz.GenreCount{Name: name, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})
	if len(counts) > topN {
		counts = counts[:topN]
	}

	return counts, nil
}

func (r *statsRepo) RuntimeDistribution(ctx context.Context) (*biz.RuntimeDistribution, error) {
	keys, err := r.data.rdb.SMembers(ctx, keyMovies).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate movie set: %w", err)
	}

	var sum float64
	var counted int64
	buckets := make([]int64, len(runtimeBucketLabels))
	for row, err := range r.data.fetchFields(ctx, keys, []string{"runtime"}, defaultScanBatch) {
		if err != nil {
			return nil, err
		}
		minutes := floatOr(row.Values[0], 0)
		if minutes <= 0 {
			continue
		}
		sum += minutes
		counted++
		buckets[runtimeBucket(minutes)]++
	}

	dist := &biz.RuntimeDistribution{Counted: counted}
	if counted > 0 {
		dist.MeanMinutes = sum / float64(counted)
	}
	for i, label := range runtimeBucketLabels {
		dist.Buckets = append(dist.Buckets, biz.RuntimeBucket{Label: label, Count: buckets[i]})
	}

	return dist, nil
}

// runtimeBucket maps a positive runtime to its histogram slot. Lower bounds
// are inclusive, upper bounds exclusive, so a 60-minute film lands in 60–90.
func runtimeBucket(minutes float64) int {
	switch {
	case minutes < 60:
		return 0
	case minutes < 90:
		return 1
	case minutes < 120:
		return 2
	case minutes < 150:
		return 3
	case minutes < 180:
		return 4
	case minutes < 240:
		return 5
	default:
		return 6
	}
}

func (r *statsRepo) RatingVotesSample(ctx context.Context, maxPoints int) ([]*biz.RatingPoint, error) {
	if maxPoints <= 0 {
		maxPoints = biz.DefaultScatterPoints
	}

	keys, err := r.data.rdb.SMembers(ctx, keyMovies).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate movie set: %w", err)
	}

	points := make([]*biz.RatingPoint, 0, min(maxPoints, len(keys)))
	for row, err := range r.data.fetchFields(ctx, keys, []string{"vote_average", "vote_count"}, defaultScanBatch) {
		if err != nil {
			return nil, err
		}
		avg := floatOr(row.Values[0], 0)
		votes := floatOr(row.Values[1], 0)
		if avg <= 0 || votes <= 0 {
			continue
		}
		points = append(points, &biz.RatingPoint{VoteCount: votes, VoteAverage: avg})
		if len(points) >= maxPoints {
			break
		}
	}

	return points, nil
}

// Status reports store reachability and never returns an error; an
// unreachable store is a valid answer, not a failure.
func (r *statsRepo) Status(ctx context.Context) (*biz.StoreStatus, error) {
	if err := r.data.rdb.Ping(ctx).Err(); err != nil {
		r.log.WithContext(ctx).Warnf("store ping failed: %v", err)
		return &biz.StoreStatus{Connected: false}, nil
	}

	status := &biz.StoreStatus{Connected: true, UsedMemory: "?"}
	if info, err := r.data.rdb.Info(ctx, "memory").Result(); err == nil {
		if v := infoValue(info, "used_memory_human"); v != "" {
			status.UsedMemory = v
		}
	}
	if n, err := r.data.rdb.DBSize(ctx).Result(); err == nil {
		status.Keys = n
	}

	return status, nil
}

// infoValue extracts one field from an INFO response body.
func infoValue(info, field string) string {
	for _, line := range strings.Split(info, "\n") {
		if rest, ok := strings.CutPrefix(line, field+":"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}
