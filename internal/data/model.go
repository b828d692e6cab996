package data

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/squadronxfr/redis-tp-ipssi/internal/biz"
)

// Store layout left behind by the ingestion job. Every movie is one hash
// under an opaque record key; the membership set and the ranking zsets below
// reference those keys. The title index maps lower-cased trimmed titles to
// record keys, last write wins.
const (
	keyMovies         = "tmdb:movies"
	keyPopularityIdx  = "tmdb:idx:popularity"
	keyVoteAverageIdx = "tmdb:idx:vote_average"
	keyReleaseDateIdx = "tmdb:idx:release_date"
	keyRevenueIdx     = "tmdb:idx:revenue"
	keyTitleToKeyIdx  = "tmdb:idx:title_to_key"
)

// untitled replaces a missing title in ranking rows.
const untitled = "(untitled)"

// detailFields is the full attribute bundle fetched for a single movie, in
// reply order.
var detailFields = []string{
	"title",
	"release_date",
	"runtime",
	"vote_average",
	"vote_count",
	"popularity",
	"revenue",
	"genres",
	"overview",
}

// FieldRow is one record key together with its fetched field values, one
// slot per requested field. Absent fields are nil.
type FieldRow struct {
	Key    string
	Values []interface{}
}

// floatOr coerces a raw hash value to float64, falling back to def for
// absent, empty, non-numeric or non-finite values. ParseFloat accepts "nan"
// and "inf", which would poison means and fail JSON encoding downstream.
func floatOr(v interface{}, def float64) float64 {
	s, ok := v.(string)
	if !ok || s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// stringOr coerces a raw hash value to string, falling back to def.
func stringOr(v interface{}, def string) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return def
	}
	return s
}

// parseGenres decodes the serialized genre list stored on each movie.
// Malformed payloads yield nil.
func parseGenres(v interface{}) []biz.Genre {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	var genres []biz.Genre
	if err := json.Unmarshal([]byte(s), &genres); err != nil {
		return nil
	}
	return genres
}
