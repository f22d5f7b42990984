package services

import (
	"context"
	"fmt"

	"github.com/alimgiray/gitfolio/internal/models"
	"golang.org/x/sync/errgroup"
)

// PortfolioService joins the profile and repository reads into one operation.
// Either both succeed or the whole fetch fails; a partial result is never
// returned, so a caller can only ever render a consistent pair.
type PortfolioService struct {
	fetcher PortfolioFetcher
}

func NewPortfolioService(fetcher PortfolioFetcher) *PortfolioService {
	return &PortfolioService{
		fetcher: fetcher,
	}
}

// Fetch retrieves the profile and repository list concurrently. No retry is
// attempted; the first failure cancels the sibling request and is surfaced
// once as a single wrapped error.
func (s *PortfolioService) Fetch(ctx context.Context, username string) (*models.Profile, []*models.Repository, error) {
	var profile *models.Profile
	var repositories []*models.Repository

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		profile, err = s.fetcher.FetchProfile(egCtx, username)
		return err
	})

	eg.Go(func() error {
		var err error
		repositories, err = s.fetcher.FetchRepositories(egCtx, username)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to fetch portfolio data: %w", err)
	}

	return profile, repositories, nil
}
