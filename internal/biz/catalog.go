package biz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
)

// Custom errors
var (
	ErrTitleNotFound = errors.New("movie title not found")
)

// CatalogUseCase handles ranking and lookup queries over the movie store.
type CatalogUseCase struct {
	repo CatalogRepo
	log  *log.Helper
}

// NewCatalogUseCase creates a new CatalogUseCase instance
func NewCatalogUseCase(repo CatalogRepo, logger log.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		repo: repo,
		log:  log.NewHelper(logger),
	}
}

// TopPopular returns the limit most popular movies, highest score first.
func (uc *CatalogUseCase) TopPopular(ctx context.Context, limit int) ([]*PopularMovie, error) {
	rows, err := uc.repo.TopPopular(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank by popularity: %w", err)
	}
	return rows, nil
}

// BestRated returns the top rated movies holding at least minVotes votes.
func (uc *CatalogUseCase) BestRated(ctx context.Context, minVotes int64, limit int) ([]*RatedMovie, error) {
	rows, err := uc.repo.BestRated(ctx, minVotes, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank by rating: %w", err)
	}
	return rows, nil
}

// NewReleases returns movies released on or after January 1st of minYear,
// newest first.
func (uc *CatalogUseCase) NewReleases(ctx context.Context, minYear, limit int) ([]*Release, error) {
	rows, err := uc.repo.NewReleases(ctx, minYear, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank by release date: %w", err)
	}
	return rows, nil
}

// BoxOfficeTop returns the limit highest grossing movies.
func (uc *CatalogUseCase) BoxOfficeTop(ctx context.Context, limit int) ([]*BoxOfficeEntry, error) {
	rows, err := uc.repo.BoxOfficeTop(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank by revenue: %w", err)
	}
	return rows, nil
}

// LookupTitle resolves an exact title, ignoring case and surrounding
// whitespace, to its full attribute bundle.
func (uc *CatalogUseCase) LookupTitle(ctx context.Context, title string) (*MovieDetail, error) {
	detail, err := uc.repo.LookupTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to look up title: %w", err)
	}
	if detail == nil {
		return nil, ErrTitleNotFound
	}
	return detail, nil
}

// SearchTitles scans the catalog for titles containing keyword. A blank
// keyword returns no results without touching the store.
func (uc *CatalogUseCase) SearchTitles(ctx context.Context, keyword string, maxResults int) ([]string, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, nil
	}
	titles, err := uc.repo.SearchTitles(ctx, keyword, maxResults)
	if err != nil {
		return nil, fmt.Errorf("failed to search titles: %w", err)
	}
	return titles, nil
}
