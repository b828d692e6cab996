// Package v1 defines the HTTP API surface of the dashboard service.
//
// Requests bind from query strings (and path vars), replies encode to JSON;
// both use the json tag names below.
package v1

// TopPopularRequest asks for the most popular movies.
type TopPopularRequest struct {
	Limit int32 `json:"limit"`
}

// PopularMovie is one row of the popularity ranking.
type PopularMovie struct {
	Title      string  `json:"title"`
	Popularity float64 `json:"popularity"`
}

// TopPopularReply carries the popularity ranking.
type TopPopularReply struct {
	Items []*PopularMovie `json:"items"`
}

// BestRatedRequest asks for the best rated movies above a vote floor. An
// absent min_votes selects the default floor; an explicit 0 disables it.
type BestRatedRequest struct {
	MinVotes *int64 `json:"min_votes"`
	Limit    int32  `json:"limit"`
}

// RatedMovie is one row of the rating ranking.
type RatedMovie struct {
	Title       string  `json:"title"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count"`
}

// BestRatedReply carries the rating ranking.
type BestRatedReply struct {
	Items []*RatedMovie `json:"items"`
}

// NewReleasesRequest asks for the most recent releases since a year.
type NewReleasesRequest struct {
	MinYear int32 `json:"min_year"`
	Limit   int32 `json:"limit"`
}

// Release is one row of the release ranking.
type Release struct {
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
}

// NewReleasesReply carries the release ranking.
type NewReleasesReply struct {
	Items []*Release `json:"items"`
}

// BoxOfficeRequest asks for the top grossing movies.
type BoxOfficeRequest struct {
	Limit int32 `json:"limit"`
}

// BoxOfficeEntry is one row of the revenue ranking.
type BoxOfficeEntry struct {
	Title   string  `json:"title"`
	Revenue float64 `json:"revenue"`
}

// BoxOfficeReply carries the revenue ranking.
type BoxOfficeReply struct {
	Items []*BoxOfficeEntry `json:"items"`
}

// GenreDistributionRequest asks for the most frequent genres.
type GenreDistributionRequest struct {
	TopN int32 `json:"top_n"`
}

// GenreCount is one genre with its number of movies.
type GenreCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// GenreDistributionReply carries the genre tally.
type GenreDistributionReply struct {
	Items []*GenreCount `json:"items"`
}

// RuntimeDistributionRequest asks for the runtime histogram.
type RuntimeDistributionRequest struct{}

// RuntimeBucket is one histogram range with its movie count.
type RuntimeBucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// RuntimeDistributionReply carries the runtime histogram.
type RuntimeDistributionReply struct {
	MeanMinutes float64          `json:"mean_minutes"`
	Counted     int64            `json:"counted"`
	Buckets     []*RuntimeBucket `json:"buckets"`
}

// RatingVotesRequest asks for a rating/votes scatter sample.
type RatingVotesRequest struct {
	MaxPoints int32 `json:"max_points"`
}

// RatingPoint is one scatter point.
type RatingPoint struct {
	VoteCount   float64 `json:"vote_count"`
	VoteAverage float64 `json:"vote_average"`
}

// RatingVotesReply carries the scatter sample.
type RatingVotesReply struct {
	Points []*RatingPoint `json:"points"`
}

// SearchMoviesRequest asks for titles containing a keyword.
type SearchMoviesRequest struct {
	Q     string `json:"q"`
	Limit int32  `json:"limit"`
}

// SearchMoviesReply carries the matching titles.
type SearchMoviesReply struct {
	Titles []string `json:"titles"`
}

// GetMovieRequest asks for one movie by exact title.
type GetMovieRequest struct {
	Title string `json:"title"`
}

// Genre is one genre attached to a movie.
type Genre struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// GetMovieReply carries the full record of one movie.
type GetMovieReply struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	ReleaseDate string   `json:"release_date"`
	Runtime     float64  `json:"runtime"`
	VoteAverage float64  `json:"vote_average"`
	VoteCount   int64    `json:"vote_count"`
	Popularity  float64  `json:"popularity"`
	Revenue     float64  `json:"revenue"`
	Genres      []*Genre `json:"genres"`
	Overview    string   `json:"overview"`
}

// StoreStatusRequest asks for store reachability and size.
type StoreStatusRequest struct{}

// StoreStatusReply carries the store status.
type StoreStatusReply struct {
	Connected  bool   `json:"connected"`
	UsedMemory string `json:"used_memory"`
	Keys       int64  `json:"keys"`
}

// HealthCheckRequest asks whether the service is up.
type HealthCheckRequest struct{}

// HealthCheckReply reports service liveness.
type HealthCheckReply struct {
	Status string `json:"status"`
}
