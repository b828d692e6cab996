package data

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/squadronxfr/redis-tp-ipssi/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsRepo(t *testing.T) (biz.StatsRepo, *Data) {
	t.Helper()

	d, _ := newTestData(t)
	return NewStatsRepo(d, log.DefaultLogger), d
}

func TestGenreDistribution(t *testing.T) {
	repo, d := newStatsRepo(t)
	ctx := context.Background()

	addMovie(t, d, "tmdb:movie:1", map[string]string{
		"title":  "A",
		"genres": `[{"id":28,"name":"Action"},{"id":18,"name":"Drama"}]`,
	})
	addMovie(t, d, "tmdb:movie:2", map[string]string{
		"title":  "B",
		"genres": `[{"id":28,"name":"Action"},{"id":878,"name":"Science Fiction"}]`,
	})
	addMovie(t, d, "tmdb:movie:3", map[string]string{
		"title":  "C",
		"genres": `[{"id":18,"name":"Drama"}]`,
	})
	addMovie(t, d, "tmdb:movie:4", map[string]string{
		"title":  "D",
		"genres": `{oops`,
	})
	addMovie(t, d, "tmdb:movie:5", map[string]string{
		"title":  "E",
		"genres": `[{"id":99,"name":"   "}]`,
	})
	addMovie(t, d, "tmdb:movie:6", map[string]string{
		"title": "F",
	})

	t.Run("tallies and orders", func(t *testing.T) {
		counts, err := repo.GenreDistribution(ctx, 12)
		require.NoError(t, err)
		require.Len(t, counts, 3)
		assert.Equal(t, &biz.GenreCount{Name: "Action", Count: 2}, counts[0])
		assert.Equal(t, &biz.GenreCount{Name: "Drama", Count: 2}, counts[1])
		assert.Equal(t, &biz.GenreCount{Name: "Science Fiction", Count: 1}, counts[2])
	})

	t.Run("truncates to top n", func(t *testing.T) {
		counts, err := repo.GenreDistribution(ctx, 2)
		require.NoError(t, err)
		require.Len(t, counts, 2)

		var sum int64
		for _, c := range counts {
			sum += c.Count
		}
		assert.LessOrEqual(t, sum, int64(5))
	})

	t.Run("empty catalog", func(t *testing.T) {
		emptyRepo, _ := newStatsRepo(t)

		counts, err := emptyRepo.GenreDistribution(ctx, 12)
		require.NoError(t, err)
		assert.Empty(t, counts)
	})
}

func TestRuntimeDistribution(t *testing.T) {
	repo, d := newStatsRepo(t)
	ctx := context.Background()

	runtimes := map[string]string{
		"tmdb:movie:1": "45",
		"tmdb:movie:2": "60",
		"tmdb:movie:3": "89.5",
		"tmdb:movie:4": "90",
		"tmdb:movie:5": "150",
		"tmdb:movie:6": "240",
		"tmdb:movie:7": "500",
	}
	for key, rt := range runtimes {
		addMovie(t, d, key, map[string]string{"title": key, "runtime": rt})
	}
	addMovie(t, d, "tmdb:movie:8", map[string]string{"title": "zero", "runtime": "0"})
	addMovie(t, d, "tmdb:movie:9", map[string]string{"title": "text", "runtime": "soon"})
	addMovie(t, d, "tmdb:movie:10", map[string]string{"title": "absent"})

	dist, err := repo.RuntimeDistribution(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(7), dist.Counted)
	assert.InDelta(t, (45+60+89.5+90+150+240+500)/7.0, dist.MeanMinutes, 1e-9)

	want := map[string]int64{
		"≤60":     1,
		"60–90":   2,
		"90–120":  1,
		"120–150": 0,
		"150–180": 1,
		"180–240": 0,
		">240":    2,
	}
	require.Len(t, dist.Buckets, len(want))
	var sum int64
	for _, b := range dist.Buckets {
		assert.Equal(t, want[b.Label], b.Count, "bucket %s", b.Label)
		sum += b.Count
	}
	assert.Equal(t, dist.Counted, sum)
}

func TestRuntimeDistributionEmpty(t *testing.T) {
	repo, _ := newStatsRepo(t)

	dist, err := repo.RuntimeDistribution(context.Background())
	require.NoError(t, err)
	assert.Zero(t, dist.Counted)
	assert.Zero(t, dist.MeanMinutes)
	require.Len(t, dist.Buckets, 7)
	for _, b := range dist.Buckets {
		assert.Zero(t, b.Count)
	}
}

func TestRatingVotesSample(t *testing.T) {
	repo, d := newStatsRepo(t)
	ctx := context.Background()

	addMovie(t, d, "tmdb:movie:1", map[string]string{"title": "A", "vote_average": "8.0", "vote_count": "1200"})
	addMovie(t, d, "tmdb:movie:2", map[string]string{"title": "B", "vote_average": "7.5", "vote_count": "300"})
	addMovie(t, d, "tmdb:movie:3", map[string]string{"title": "C", "vote_average": "0", "vote_count": "500"})
	addMovie(t, d, "tmdb:movie:4", map[string]string{"title": "D", "vote_average": "6.0", "vote_count": "0"})
	addMovie(t, d, "tmdb:movie:5", map[string]string{"title": "E"})
	addMovie(t, d, "tmdb:movie:6", map[string]string{"title": "F", "vote_average": "9.0", "vote_count": "10"})

	t.Run("keeps strictly positive pairs", func(t *testing.T) {
		points, err := repo.RatingVotesSample(ctx, 100)
		require.NoError(t, err)
		assert.ElementsMatch(t, []*biz.RatingPoint{
			{VoteCount: 1200, VoteAverage: 8.0},
			{VoteCount: 300, VoteAverage: 7.5},
			{VoteCount: 10, VoteAverage: 9.0},
		}, points)
	})

	t.Run("caps the sample", func(t *testing.T) {
		points, err := repo.RatingVotesSample(ctx, 2)
		require.NoError(t, err)
		require.Len(t, points, 2)
		for _, p := range points {
			assert.Positive(t, p.VoteCount)
			assert.Positive(t, p.VoteAverage)
		}
	})
}

func TestStatsSkipNonFiniteValues(t *testing.T) {
	repo, d := newStatsRepo(t)
	ctx := context.Background()

	addMovie(t, d, "tmdb:movie:1", map[string]string{
		"title":        "Fine",
		"runtime":      "100",
		"vote_average": "7.5",
		"vote_count":   "50",
	})
	// A corrupt record holds "nan"/"inf" strings, which ParseFloat accepts.
	require.NoError(t, d.rdb.HSet(ctx, "tmdb:movie:2", map[string]string{
		"title":        "Corrupt",
		"runtime":      "nan",
		"vote_average": "inf",
		"vote_count":   "50",
	}).Err())
	require.NoError(t, d.rdb.SAdd(ctx, keyMovies, "tmdb:movie:2").Err())

	t.Run("runtime histogram", func(t *testing.T) {
		dist, err := repo.RuntimeDistribution(ctx)
		require.NoError(t, err)

		assert.Equal(t, int64(1), dist.Counted)
		assert.InDelta(t, 100, dist.MeanMinutes, 1e-9)
		assert.False(t, math.IsNaN(dist.MeanMinutes))

		var sum int64
		for _, b := range dist.Buckets {
			sum += b.Count
		}
		assert.Equal(t, dist.Counted, sum)
	})

	t.Run("scatter sample", func(t *testing.T) {
		points, err := repo.RatingVotesSample(ctx, 100)
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, &biz.RatingPoint{VoteCount: 50, VoteAverage: 7.5}, points[0])
	})
}

func TestStatus(t *testing.T) {
	t.Run("connected store", func(t *testing.T) {
		repo, d := newStatsRepo(t)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			addMovie(t, d, fmt.Sprintf("tmdb:movie:%d", i), map[string]string{"title": fmt.Sprintf("Movie %d", i), "popularity": "1"})
		}

		status, err := repo.Status(ctx)
		require.NoError(t, err)
		assert.True(t, status.Connected)
		assert.NotEmpty(t, status.UsedMemory)

		keys, err := d.rdb.DBSize(ctx).Result()
		require.NoError(t, err)
		assert.Equal(t, keys, status.Keys)
		assert.Positive(t, status.Keys)
	})

	t.Run("unreachable store", func(t *testing.T) {
		d, mr := newTestData(t)
		mr.Close()
		repo := NewStatsRepo(d, log.DefaultLogger)

		status, err := repo.Status(context.Background())
		require.NoError(t, err)
		assert.False(t, status.Connected)
		assert.Zero(t, status.Keys)
	})
}
