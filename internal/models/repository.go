package models

import "time"

// Repository represents a single public GitHub repository shown in the portfolio
type Repository struct {
	GithubID        int64      `json:"github_id"`
	Name            string     `json:"name"`
	Description     *string    `json:"description"`
	Language        *string    `json:"language"`
	Stars           int        `json:"stars"`
	Forks           int        `json:"forks"`
	URL             string     `json:"url"`
	HomepageURL     *string    `json:"homepage_url"`
	GithubUpdatedAt *time.Time `json:"github_updated_at"`
}

// NewRepository creates a new Repository with the required fields
func NewRepository(githubID int64, name, url string) *Repository {
	return &Repository{
		GithubID: githubID,
		Name:     name,
		URL:      url,
		Stars:    0,
		Forks:    0,
	}
}
