package services

import (
	"github.com/alimgiray/gitfolio/internal/models"
)

const (
	// DefaultMaxProjects caps how many cards are rendered in one pass
	DefaultMaxProjects = 12
	// DefaultStaggerDelayMS is the per-card entrance animation delay
	DefaultStaggerDelayMS = 100

	// noDescription substitutes for repositories without a description
	noDescription = "No description available."
)

// ProjectService maps repository records to display cards. The cards carry
// raw text; escaping is enforced by the HTML template when they are rendered.
type ProjectService struct {
	maxProjects    int
	staggerDelayMS int
}

// NewProjectService creates a renderer with the given display cap and
// stagger delay. Non-positive values fall back to the defaults.
func NewProjectService(maxProjects, staggerDelayMS int) *ProjectService {
	if maxProjects <= 0 {
		maxProjects = DefaultMaxProjects
	}
	if staggerDelayMS < 0 {
		staggerDelayMS = DefaultStaggerDelayMS
	}
	return &ProjectService{
		maxProjects:    maxProjects,
		staggerDelayMS: staggerDelayMS,
	}
}

// BuildCards truncates the list to the display cap and maps each repository
// onto a Card, preserving input order. An empty result signals the template
// to render the "no projects found" placeholder instead of a grid.
func (s *ProjectService) BuildCards(repositories []*models.Repository) []*models.Card {
	if len(repositories) > s.maxProjects {
		repositories = repositories[:s.maxProjects]
	}

	cards := make([]*models.Card, 0, len(repositories))
	for i, repo := range repositories {
		cards = append(cards, s.buildCard(repo, i))
	}

	return cards
}

// buildCard maps a single repository onto its card view model
func (s *ProjectService) buildCard(repo *models.Repository, index int) *models.Card {
	card := &models.Card{
		Name:        repo.Name,
		Description: noDescription,
		Stars:       repo.Stars,
		Forks:       repo.Forks,
		URL:         repo.URL,
		DelayMS:     index * s.staggerDelayMS,
	}

	if repo.Description != nil && *repo.Description != "" {
		card.Description = *repo.Description
	}
	if repo.Language != nil {
		card.Language = *repo.Language
	}
	if repo.HomepageURL != nil {
		card.HomepageURL = *repo.HomepageURL
	}

	return card
}
