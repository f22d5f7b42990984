package services

import (
	"context"
	"fmt"

	"github.com/alimgiray/gitfolio/internal/models"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// PortfolioFetcher defines the two independent reads against the GitHub API.
// Both are side-effect-free; pagination is bounded to a single page.
type PortfolioFetcher interface {
	FetchProfile(ctx context.Context, username string) (*models.Profile, error)
	FetchRepositories(ctx context.Context, username string) ([]*models.Repository, error)
}

// GitHubService is the concrete PortfolioFetcher backed by the GitHub REST API
type GitHubService struct {
	client *github.Client
}

// NewGitHubService creates a GitHub client. The token is optional; without it
// requests run against the anonymous rate limit.
func NewGitHubService(token string) *GitHubService {
	if token == "" {
		return &GitHubService{client: github.NewClient(nil)}
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	return &GitHubService{client: github.NewClient(tc)}
}

// FetchProfile retrieves the public profile for a user
func (s *GitHubService) FetchProfile(ctx context.Context, username string) (*models.Profile, error) {
	user, _, err := s.client.Users.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}

	return &models.Profile{
		Username:    user.GetLogin(),
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
	}, nil
}

// FetchRepositories retrieves the user's public repositories, most recently
// updated first. A single page of up to 100 entries is fetched; the display
// cap makes deeper pagination pointless.
func (s *GitHubService) FetchRepositories(ctx context.Context, username string) ([]*models.Repository, error) {
	opt := &github.RepositoryListOptions{
		Type:        "owner",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	repos, _, err := s.client.Repositories.List(ctx, username, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories for %s: %w", username, err)
	}

	result := make([]*models.Repository, 0, len(repos))
	for _, repo := range repos {
		result = append(result, newRepositoryFromAPI(repo))
	}

	return result, nil
}

// newRepositoryFromAPI maps a GitHub API repository onto our model
func newRepositoryFromAPI(repo *github.Repository) *models.Repository {
	r := models.NewRepository(repo.GetID(), repo.GetName(), repo.GetHTMLURL())

	if repo.Description != nil {
		r.Description = repo.Description
	}
	if repo.Language != nil {
		r.Language = repo.Language
	}
	r.Stars = repo.GetStargazersCount()
	r.Forks = repo.GetForksCount()
	if repo.Homepage != nil && *repo.Homepage != "" {
		r.HomepageURL = repo.Homepage
	}
	if repo.UpdatedAt != nil {
		r.GithubUpdatedAt = &repo.UpdatedAt.Time
	}

	return r
}
