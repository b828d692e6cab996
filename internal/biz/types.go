package biz

import "context"

// Default knobs for the dashboard queries, mirroring the controls the
// presentation layer exposes.
const (
	DefaultPopularLimit   = 20
	DefaultRatedLimit     = 10
	DefaultRatedMinVotes  = 1000
	DefaultReleaseLimit   = 20
	DefaultReleaseMinYear = 2010
	DefaultBoxOfficeLimit = 10
	DefaultGenreBuckets   = 12
	DefaultScatterPoints  = 3000
	DefaultSearchLimit    = 10
)

// PopularMovie is one row of the popularity ranking.
type PopularMovie struct {
	Title      string
	Popularity float64
}

// RatedMovie is one row of the vote-average ranking after the vote floor.
type RatedMovie struct {
	Title       string
	VoteAverage float64
	VoteCount   int64
}

// Release is one row of the release-date ranking.
type Release struct {
	Title       string
	ReleaseDate string
}

// BoxOfficeEntry is one row of the revenue ranking.
type BoxOfficeEntry struct {
	Title   string
	Revenue float64
}

// Genre is one entry of a movie's genre list.
type Genre struct {
	ID   int64
	Name string
}

// GenreCount is one genre with its number of occurrences across the catalog.
type GenreCount struct {
	Name  string
	Count int64
}

// RuntimeBucket is one fixed histogram bin of movie runtimes.
type RuntimeBucket struct {
	Label string
	Count int64
}

// RuntimeDistribution summarizes runtimes across the catalog. Counted is the
// number of movies with a strictly positive runtime; unknown runtimes appear
// in neither the mean nor the buckets.
type RuntimeDistribution struct {
	MeanMinutes float64
	Counted     int64
	Buckets     []RuntimeBucket
}

// RatingPoint is one rating-vs-votes scatter sample.
type RatingPoint struct {
	VoteCount   float64
	VoteAverage float64
}

// MovieDetail is the full normalized attribute bundle for one movie.
type MovieDetail struct {
	Key         string
	Title       string
	ReleaseDate string
	Runtime     float64
	VoteAverage float64
	VoteCount   int64
	Popularity  float64
	Revenue     float64
	Genres      []Genre
	Overview    string
}

// StoreStatus reports reachability and basic introspection of the store.
type StoreStatus struct {
	Connected  bool
	UsedMemory string
	Keys       int64
}

// CatalogRepo reads the ranking indexes and per-movie hashes.
type CatalogRepo interface {
	TopPopular(ctx context.Context, limit int) ([]*PopularMovie, error)
	BestRated(ctx context.Context, minVotes int64, limit int) ([]*RatedMovie, error)
	NewReleases(ctx context.Context, minYear, limit int) ([]*Release, error)
	BoxOfficeTop(ctx context.Context, limit int) ([]*BoxOfficeEntry, error)
	// LookupTitle resolves a normalized title via the title index. A miss is
	// (nil, nil), not an error.
	LookupTitle(ctx context.Context, title string) (*MovieDetail, error)
	SearchTitles(ctx context.Context, keyword string, maxResults int) ([]string, error)
}

// StatsRepo builds catalog-wide aggregations by full enumeration.
type StatsRepo interface {
	GenreDistribution(ctx context.Context, topN int) ([]*GenreCount, error)
	RuntimeDistribution(ctx context.Context) (*RuntimeDistribution, error)
	RatingVotesSample(ctx context.Context, maxPoints int) ([]*RatingPoint, error)
	Status(ctx context.Context) (*StoreStatus, error)
}
