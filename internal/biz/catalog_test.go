package biz

import (
	"context"
	"errors"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogRepo struct {
	topPopular   func(ctx context.Context, limit int) ([]*PopularMovie, error)
	bestRated    func(ctx context.Context, minVotes int64, limit int) ([]*RatedMovie, error)
	newReleases  func(ctx context.Context, minYear, limit int) ([]*Release, error)
	boxOffice    func(ctx context.Context, limit int) ([]*BoxOfficeEntry, error)
	lookupTitle  func(ctx context.Context, title string) (*MovieDetail, error)
	searchTitles func(ctx context.Context, keyword string, maxResults int) ([]string, error)
}

func (f *fakeCatalogRepo) TopPopular(ctx context.Context, limit int) ([]*PopularMovie, error) {
	return f.topPopular(ctx, limit)
}

func (f *fakeCatalogRepo) BestRated(ctx context.Context, minVotes int64, limit int) ([]*RatedMovie, error) {
	return f.bestRated(ctx, minVotes, limit)
}

func (f *fakeCatalogRepo) NewReleases(ctx context.Context, minYear, limit int) ([]*Release, error) {
	return f.newReleases(ctx, minYear, limit)
}

func (f *fakeCatalogRepo) BoxOfficeTop(ctx context.Context, limit int) ([]*BoxOfficeEntry, error) {
	return f.boxOffice(ctx, limit)
}

func (f *fakeCatalogRepo) LookupTitle(ctx context.Context, title string) (*MovieDetail, error) {
	return f.lookupTitle(ctx, title)
}

func (f *fakeCatalogRepo) SearchTitles(ctx context.Context, keyword string, maxResults int) ([]string, error) {
	return f.searchTitles(ctx, keyword, maxResults)
}

func TestCatalogUseCaseTopPopular(t *testing.T) {
	want := []*PopularMovie{{Title: "Dune", Popularity: 95.5}}
	repo := &fakeCatalogRepo{
		topPopular: func(ctx context.Context, limit int) ([]*PopularMovie, error) {
			assert.Equal(t, 20, limit)
			return want, nil
		},
	}
	uc := NewCatalogUseCase(repo, log.DefaultLogger)

	got, err := uc.TopPopular(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCatalogUseCaseWrapsRepoErrors(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &fakeCatalogRepo{
		topPopular: func(ctx context.Context, limit int) ([]*PopularMovie, error) {
			return nil, repoErr
		},
		bestRated: func(ctx context.Context, minVotes int64, limit int) ([]*RatedMovie, error) {
			return nil, repoErr
		},
		newReleases: func(ctx context.Context, minYear, limit int) ([]*Release, error) {
			return nil, repoErr
		},
		boxOffice: func(ctx context.Context, limit int) ([]*BoxOfficeEntry, error) {
			return nil, repoErr
		},
		searchTitles: func(ctx context.Context, keyword string, maxResults int) ([]string, error) {
			return nil, repoErr
		},
	}
	uc := NewCatalogUseCase(repo, log.DefaultLogger)
	ctx := context.Background()

	_, err := uc.TopPopular(ctx, 5)
	assert.ErrorIs(t, err, repoErr)
	assert.ErrorContains(t, err, "failed to rank by popularity")

	_, err = uc.BestRated(ctx, 1000, 5)
	assert.ErrorIs(t, err, repoErr)

	_, err = uc.NewReleases(ctx, 2010, 5)
	assert.ErrorIs(t, err, repoErr)

	_, err = uc.BoxOfficeTop(ctx, 5)
	assert.ErrorIs(t, err, repoErr)

	_, err = uc.SearchTitles(ctx, "dune", 5)
	assert.ErrorIs(t, err, repoErr)
}

func TestCatalogUseCaseLookupTitle(t *testing.T) {
	t.Run("hit", func(t *testing.T) {
		repo := &fakeCatalogRepo{
			lookupTitle: func(ctx context.Context, title string) (*MovieDetail, error) {
				assert.Equal(t, "Dune", title)
				return &MovieDetail{Key: "tmdb:movie:438631", Title: "Dune"}, nil
			},
		}
		uc := NewCatalogUseCase(repo, log.DefaultLogger)

		detail, err := uc.LookupTitle(context.Background(), "Dune")
		require.NoError(t, err)
		assert.Equal(t, "tmdb:movie:438631", detail.Key)
	})

	t.Run("miss maps to ErrTitleNotFound", func(t *testing.T) {
		repo := &fakeCatalogRepo{
			lookupTitle: func(ctx context.Context, title string) (*MovieDetail, error) {
				return nil, nil
			},
		}
		uc := NewCatalogUseCase(repo, log.DefaultLogger)

		_, err := uc.LookupTitle(context.Background(), "Arrakis")
		assert.ErrorIs(t, err, ErrTitleNotFound)
	})

	t.Run("repo failure is not a miss", func(t *testing.T) {
		repoErr := errors.New("connection refused")
		repo := &fakeCatalogRepo{
			lookupTitle: func(ctx context.Context, title string) (*MovieDetail, error) {
				return nil, repoErr
			},
		}
		uc := NewCatalogUseCase(repo, log.DefaultLogger)

		_, err := uc.LookupTitle(context.Background(), "Dune")
		assert.ErrorIs(t, err, repoErr)
		assert.NotErrorIs(t, err, ErrTitleNotFound)
	})
}

func TestCatalogUseCaseSearchTitlesBlankQuery(t *testing.T) {
	var called bool
	repo := &fakeCatalogRepo{
		searchTitles: func(ctx context.Context, keyword string, maxResults int) ([]string, error) {
			called = true
			return []string{"should not happen"}, nil
		},
	}
	uc := NewCatalogUseCase(repo, log.DefaultLogger)

	for _, q := range []string{"", "   ", "\t"} {
		titles, err := uc.SearchTitles(context.Background(), q, 10)
		require.NoError(t, err)
		assert.Empty(t, titles)
	}
	assert.False(t, called)
}
