package data

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/squadronxfr/redis-tp-ipssi/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
)

// ratedPageSize is the fixed ZREVRANGE step used while filtering the rating
// index by vote floor. The whole index may be paged when the floor is high;
// the rating index is assumed small enough for that to stay cheap.
const ratedPageSize = 200

type catalogRepo struct {
	data *Data
	log  *log.Helper
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(data *Data, logger log.Logger) biz.CatalogRepo {
	return &catalogRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *catalogRepo) TopPopular(ctx context.Context, limit int) ([]*biz.PopularMovie, error) {
	if limit <= 0 {
		limit = biz.DefaultPopularLimit
	}

	members, err := r.data.rdb.ZRevRange(ctx, keyPopularityIdx, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read popularity index: %w", err)
	}

	rows := make([]*biz.PopularMovie, 0, len(members))
	for row, err := range r.data.fetchFields(ctx, members, []string{"title", "popularity"}, defaultScanBatch) {
		if err != nil {
			return nil, err
		}
		rows = append(rows, &biz.PopularMovie{
			Title:      stringOr(row.Values[0], untitled),
			Popularity: floatOr(row.Values[1], 0),
		})
	}

	return rows, nil
}

func (r *catalogRepo) BestRated(ctx context.Context, minVotes int64, limit int) ([]*biz.RatedMovie, error) {
	if limit <= 0 {
		limit = biz.DefaultRatedLimit
	}

	rows := make([]*biz.RatedMovie, 0, limit)
	for start := int64(0); len(rows) < limit; start += ratedPageSize {
		chunk, err := r.data.rdb.ZRevRange(ctx, keyVoteAverageIdx, start, start+ratedPageSize-1).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to page rating index: %w", err)
		}
		if len(chunk) == 0 {
			break
		}

		for row, err := range r.data.fetchFields(ctx, chunk, []string{"title", "vote_average", "vote_count"}, ratedPageSize) {
			if err != nil {
				return nil, err
			}
			votes := int64(floatOr(row.Values[2], 0))
			if votes < minVotes {
				continue
			}
			rows = append(rows, &biz.RatedMovie{
				Title:       stringOr(row.Values[0], untitled),
				VoteAverage: floatOr(row.Values[1], 0),
				VoteCount:   votes,
			})
			if len(rows) >= limit {
				break
			}
		}
	}

	return rows, nil
}

func (r *catalogRepo) NewReleases(ctx context.Context, minYear, limit int) ([]*biz.Release, error) {
	if limit <= 0 {
		limit = biz.DefaultReleaseLimit
	}

	// The release index scores dates as YYYYMMDD integers; everything from
	// January 1st of minYear upward qualifies.
	minScore := fmt.Sprintf("%04d0101", minYear)
	members, err := r.data.rdb.ZRevRangeByScore(ctx, keyReleaseDateIdx, &redis.ZRangeBy{
		Min:    minScore,
		Max:    "+inf",
		Offset: 0,
		Count:  int64(limit),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read release index: %w", err)
	}

	rows := make([]*biz.Release, 0, len(members))
	for row, err := range r.data.fetchFields(ctx, members, []string{"title", "release_date"}, defaultScanBatch) {
		if err != nil {
			return nil, err
		}
		rows = append(rows, &biz.Release{
			Title:       stringOr(row.Values[0], untitled),
			ReleaseDate: stringOr(row.Values[1], ""),
		})
	}

	return rows, nil
}

func (r *catalogRepo) BoxOfficeTop(ctx context.Context, limit int) ([]*biz.BoxOfficeEntry, error) {
	if limit <= 0 {
		limit = biz.DefaultBoxOfficeLimit
	}

	members, err := r.data.rdb.ZRevRange(ctx, keyRevenueIdx, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read revenue index: %w", err)
	}

	rows := make([]*biz.BoxOfficeEntry, 0, len(members))
	for row, err := range r.data.fetchFields(ctx, members, []string{"title", "revenue"}, defaultScanBatch) {
		if err != nil {
			return nil, err
		}
		rows = append(rows, &biz.BoxOfficeEntry{
			Title:   stringOr(row.Values[0], untitled),
			Revenue: floatOr(row.Values[1], 0),
		})
	}

	return rows, nil
}

func (r *catalogRepo) LookupTitle(ctx context.Context, title string) (*biz.MovieDetail, error) {
	normalized := strings.ToLower(strings.TrimSpace(title))
	if normalized == "" {
		return nil, nil
	}

	key, err := r.data.rdb.HGet(ctx, keyTitleToKeyIdx, normalized).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read title index: %w", err)
	}

	for row, err := range r.data.fetchFields(ctx, []string{key}, detailFields, 1) {
		if err != nil {
			return nil, err
		}
		return &biz.MovieDetail{
			Key:         row.Key,
			Title:       stringOr(row.Values[0], ""),
			ReleaseDate: stringOr(row.Values[1], ""),
			Runtime:     floatOr(row.Values[2], 0),
			VoteAverage: floatOr(row.Values[3], 0),
			VoteCount:   int64(floatOr(row.Values[4], 0)),
			Popularity:  floatOr(row.Values[5], 0),
			Revenue:     floatOr(row.Values[6], 0),
			Genres:      parseGenres(row.Values[7]),
			Overview:    stringOr(row.Values[8], ""),
		}, nil
	}

	return nil, nil
}

func (r *catalogRepo) SearchTitles(ctx context.Context, keyword string, maxResults int) ([]string, error) {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return nil, nil
	}
	if maxResults <= 0 {
		maxResults = biz.DefaultSearchLimit
	}

	keys, err := r.data.rdb.SMembers(ctx, keyMovies).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate movie set: %w", err)
	}

	matches := make([]string, 0, maxResults)
	for row, err := range r.data.fetchFields(ctx, keys, []string{"title"}, searchScanBatch) {
		if err != nil {
			return nil, err
		}
		title := stringOr(row.Values[0], "")
		if title == "" {
			continue
		}
		if strings.Contains(strings.ToLower(title), needle) {
			matches = append(matches, title)
			if len(matches) >= maxResults {
				break
			}
		}
	}

	return matches, nil
}
