package service

import (
	"context"
	stderrors "errors"

	v1 "github.com/squadronxfr/redis-tp-ipssi/api/dashboard/v1"
	"github.com/squadronxfr/redis-tp-ipssi/internal/biz"

	"github.com/go-kratos/kratos/v2/errors"
)

// Request caps. Clients may ask for less than the defaults but never for
// unbounded result sets.
const (
	maxListLimit     = 100
	maxGenreBuckets  = 50
	maxScatterPoints = 10000
	maxSearchResults = 100
)

// DashboardService implements the Dashboard API on top of the catalog and
// stats use cases.
type DashboardService struct {
	catalog *biz.CatalogUseCase
	stats   *biz.StatsUseCase
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(catalog *biz.CatalogUseCase, stats *biz.StatsUseCase) *DashboardService {
	return &DashboardService{
		catalog: catalog,
		stats:   stats,
	}
}

// limitOrDefault resolves an optional request limit against its default and
// hard cap. Zero means "use the default"; negatives are rejected upstream.
func limitOrDefault(v int32, def, max int) (int, error) {
	if v < 0 {
		return 0, errors.BadRequest("INVALID_LIMIT", "limit must not be negative")
	}
	if v == 0 {
		return def, nil
	}
	if int(v) > max {
		return max, nil
	}
	return int(v), nil
}

// TopPopular returns the most popular movies.
func (s *DashboardService) TopPopular(ctx context.Context, req *v1.TopPopularRequest) (*v1.TopPopularReply, error) {
	limit, err := limitOrDefault(req.Limit, biz.DefaultPopularLimit, maxListLimit)
	if err != nil {
		return nil, err
	}

	movies, err := s.catalog.TopPopular(ctx, limit)
	if err != nil {
		return nil, err
	}

	reply := &v1.TopPopularReply{Items: make([]*v1.PopularMovie, 0, len(movies))}
	for _, m := range movies {
		reply.Items = append(reply.Items, &v1.PopularMovie{
			Title:      m.Title,
			Popularity: m.Popularity,
		})
	}
	return reply, nil
}

// BestRated returns the best rated movies above a vote floor. The floor is
// optional so an explicit min_votes=0 stays distinct from an absent one.
func (s *DashboardService) BestRated(ctx context.Context, req *v1.BestRatedRequest) (*v1.BestRatedReply, error) {
	minVotes := int64(biz.DefaultRatedMinVotes)
	if req.MinVotes != nil {
		if *req.MinVotes < 0 {
			return nil, errors.BadRequest("INVALID_MIN_VOTES", "min_votes must not be negative")
		}
		minVotes = *req.MinVotes
	}
	limit, err := limitOrDefault(req.Limit, biz.DefaultRatedLimit, maxListLimit)
	if err != nil {
		return nil, err
	}

	movies, err := s.catalog.BestRated(ctx, minVotes, limit)
	if err != nil {
		return nil, err
	}

	reply := &v1.BestRatedReply{Items: make([]*v1.RatedMovie, 0, len(movies))}
	for _, m := range movies {
		reply.Items = append(reply.Items, &v1.RatedMovie{
			Title:       m.Title,
			VoteAverage: m.VoteAverage,
			VoteCount:   m.VoteCount,
		})
	}
	return reply, nil
}

// NewReleases returns the most recent releases since a year.
func (s *DashboardService) NewReleases(ctx context.Context, req *v1.NewReleasesRequest) (*v1.NewReleasesReply, error) {
	if req.MinYear < 0 {
		return nil, errors.BadRequest("INVALID_MIN_YEAR", "min_year must not be negative")
	}
	limit, err := limitOrDefault(req.Limit, biz.DefaultReleaseLimit, maxListLimit)
	if err != nil {
		return nil, err
	}
	minYear := int(req.MinYear)
	if minYear == 0 {
		minYear = biz.DefaultReleaseMinYear
	}

	releases, err := s.catalog.NewReleases(ctx, minYear, limit)
	if err != nil {
		return nil, err
	}

	reply := &v1.NewReleasesReply{Items: make([]*v1.Release, 0, len(releases))}
	for _, rel := range releases {
		reply.Items = append(reply.Items, &v1.Release{
			Title:       rel.Title,
			ReleaseDate: rel.ReleaseDate,
		})
	}
	return reply, nil
}

// BoxOffice returns the top grossing movies.
func (s *DashboardService) BoxOffice(ctx context.Context, req *v1.BoxOfficeRequest) (*v1.BoxOfficeReply, error) {
	limit, err := limitOrDefault(req.Limit, biz.DefaultBoxOfficeLimit, maxListLimit)
	if err != nil {
		return nil, err
	}

	entries, err := s.catalog.BoxOfficeTop(ctx, limit)
	if err != nil {
		return nil, err
	}

	reply := &v1.BoxOfficeReply{Items: make([]*v1.BoxOfficeEntry, 0, len(entries))}
	for _, e := range entries {
		reply.Items = append(reply.Items, &v1.BoxOfficeEntry{
			Title:   e.Title,
			Revenue: e.Revenue,
		})
	}
	return reply, nil
}

// GenreDistribution returns the most frequent genres.
func (s *DashboardService) GenreDistribution(ctx context.Context, req *v1.GenreDistributionRequest) (*v1.GenreDistributionReply, error) {
	topN, err := limitOrDefault(req.TopN, biz.DefaultGenreBuckets, maxGenreBuckets)
	if err != nil {
		return nil, err
	}

	counts, err := s.stats.GenreDistribution(ctx, topN)
	if err != nil {
		return nil, err
	}

	reply := &v1.GenreDistributionReply{Items: make([]*v1.GenreCount, 0, len(counts))}
	for _, c := range counts {
		reply.Items = append(reply.Items, &v1.GenreCount{
			Name:  c.Name,
			Count: c.Count,
		})
	}
	return reply, nil
}

// RuntimeDistribution returns the runtime histogram.
func (s *DashboardService) RuntimeDistribution(ctx context.Context, req *v1.RuntimeDistributionRequest) (*v1.RuntimeDistributionReply, error) {
	dist, err := s.stats.RuntimeDistribution(ctx)
	if err != nil {
		return nil, err
	}

	reply := &v1.RuntimeDistributionReply{
		MeanMinutes: dist.MeanMinutes,
		Counted:     dist.Counted,
		Buckets:     make([]*v1.RuntimeBucket, 0, len(dist.Buckets)),
	}
	for _, b := range dist.Buckets {
		reply.Buckets = append(reply.Buckets, &v1.RuntimeBucket{
			Label: b.Label,
			Count: b.Count,
		})
	}
	return reply, nil
}

// RatingVotes returns a rating/votes scatter sample.
func (s *DashboardService) RatingVotes(ctx context.Context, req *v1.RatingVotesRequest) (*v1.RatingVotesReply, error) {
	maxPoints, err := limitOrDefault(req.MaxPoints, biz.DefaultScatterPoints, maxScatterPoints)
	if err != nil {
		return nil, err
	}

	points, err := s.stats.RatingVotesSample(ctx, maxPoints)
	if err != nil {
		return nil, err
	}

	reply := &v1.RatingVotesReply{Points: make([]*v1.RatingPoint, 0, len(points))}
	for _, p := range points {
		reply.Points = append(reply.Points, &v1.RatingPoint{
			VoteCount:   p.VoteCount,
			VoteAverage: p.VoteAverage,
		})
	}
	return reply, nil
}

// SearchMovies returns titles containing the keyword.
func (s *DashboardService) SearchMovies(ctx context.Context, req *v1.SearchMoviesRequest) (*v1.SearchMoviesReply, error) {
	limit, err := limitOrDefault(req.Limit, biz.DefaultSearchLimit, maxSearchResults)
	if err != nil {
		return nil, err
	}

	titles, err := s.catalog.SearchTitles(ctx, req.Q, limit)
	if err != nil {
		return nil, err
	}

	reply := &v1.SearchMoviesReply{Titles: titles}
	if reply.Titles == nil {
		reply.Titles = []string{}
	}
	return reply, nil
}

// GetMovie returns one movie by exact title.
func (s *DashboardService) GetMovie(ctx context.Context, req *v1.GetMovieRequest) (*v1.GetMovieReply, error) {
	detail, err := s.catalog.LookupTitle(ctx, req.Title)
	if err != nil {
		if stderrors.Is(err, biz.ErrTitleNotFound) {
			return nil, errors.NotFound("NOT_FOUND", "movie not found")
		}
		return nil, err
	}

	reply := &v1.GetMovieReply{
		Key:         detail.Key,
		Title:       detail.Title,
		ReleaseDate: detail.ReleaseDate,
		Runtime:     detail.Runtime,
		VoteAverage: detail.VoteAverage,
		VoteCount:   detail.VoteCount,
		Popularity:  detail.Popularity,
		Revenue:     detail.Revenue,
		Genres:      make([]*v1.Genre, 0, len(detail.Genres)),
		Overview:    detail.Overview,
	}
	for _, g := range detail.Genres {
		reply.Genres = append(reply.Genres, &v1.Genre{
			Id:   g.ID,
			Name: g.Name,
		})
	}
	return reply, nil
}

// StoreStatus returns store reachability and size.
func (s *DashboardService) StoreStatus(ctx context.Context, req *v1.StoreStatusRequest) (*v1.StoreStatusReply, error) {
	status, err := s.stats.Status(ctx)
	if err != nil {
		return nil, err
	}

	return &v1.StoreStatusReply{
		Connected:  status.Connected,
		UsedMemory: status.UsedMemory,
		Keys:       status.Keys,
	}, nil
}

// HealthCheck implements health check
func (s *DashboardService) HealthCheck(ctx context.Context, req *v1.HealthCheckRequest) (*v1.HealthCheckReply, error) {
	return &v1.HealthCheckReply{
		Status: "ok",
	}, nil
}
