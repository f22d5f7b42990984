package services

import (
	"sort"
	"strings"

	"github.com/alimgiray/gitfolio/internal/models"
	"github.com/alimgiray/gitfolio/internal/store"
)

// FilterService derives language-filtered views of the repository list.
// Filtering is pure: it never touches the underlying list or triggers a fetch.
type FilterService struct{}

func NewFilterService() *FilterService {
	return &FilterService{}
}

// Filter returns the repositories whose language contains the tag,
// case-insensitively. The "all" tag is the identity filter. Repositories
// without a language never match a non-"all" tag. Input order is preserved.
func (s *FilterService) Filter(repositories []*models.Repository, tag string) []*models.Repository {
	if tag == "" || tag == store.FilterAll {
		return repositories
	}

	needle := strings.ToLower(tag)
	filtered := make([]*models.Repository, 0, len(repositories))
	for _, repo := range repositories {
		if repo.Language == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*repo.Language), needle) {
			filtered = append(filtered, repo)
		}
	}

	return filtered
}

// Languages returns the distinct languages present in the list, sorted
// alphabetically. These drive the filter bar.
func (s *FilterService) Languages(repositories []*models.Repository) []string {
	seen := make(map[string]bool)
	languages := make([]string, 0)

	for _, repo := range repositories {
		if repo.Language == nil || *repo.Language == "" {
			continue
		}
		if !seen[*repo.Language] {
			seen[*repo.Language] = true
			languages = append(languages, *repo.Language)
		}
	}

	sort.Strings(languages)
	return languages
}
