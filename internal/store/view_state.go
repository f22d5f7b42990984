package store

import (
	"sync"

	"github.com/alimgiray/gitfolio/internal/models"
)

// FilterAll is the identity filter; it selects the full repository list.
const FilterAll = "all"

// ViewState is an immutable snapshot of what the page renders from:
// the last successfully fetched repository list and the active filter tag.
type ViewState struct {
	Repositories []*models.Repository
	ActiveFilter string
}

// ViewStateStore is the single owner of the page's view state. All mutation
// goes through its methods, and a refresh is guarded by a busy flag so a
// second fetch is never started while one is outstanding. A failed refresh
// leaves the previous state untouched.
type ViewStateStore struct {
	mu           sync.Mutex
	repositories []*models.Repository
	activeFilter string
	refreshing   bool
}

// NewViewStateStore creates an empty store with the identity filter active
func NewViewStateStore() *ViewStateStore {
	return &ViewStateStore{
		activeFilter: FilterAll,
	}
}

// Snapshot returns a copy of the current view state. The repository records
// themselves are immutable once fetched, so sharing them is safe.
func (s *ViewStateStore) Snapshot() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	repos := make([]*models.Repository, len(s.repositories))
	copy(repos, s.repositories)

	return ViewState{
		Repositories: repos,
		ActiveFilter: s.activeFilter,
	}
}

// TryBeginRefresh marks a refresh as in flight. It returns false if another
// refresh is already outstanding, in which case the caller must not fetch.
func (s *ViewStateStore) TryBeginRefresh() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refreshing {
		return false
	}
	s.refreshing = true
	return true
}

// CompleteRefresh replaces the repository list with a freshly fetched one
// and resets the active filter to "all". Must follow a TryBeginRefresh.
func (s *ViewStateStore) CompleteRefresh(repositories []*models.Repository) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.repositories = repositories
	s.activeFilter = FilterAll
	s.refreshing = false
}

// AbortRefresh clears the busy flag after a failed fetch. The previously
// stored repositories and filter are kept as they were.
func (s *ViewStateStore) AbortRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshing = false
}

// SetFilter replaces only the active filter tag
func (s *ViewStateStore) SetFilter(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tag == "" {
		tag = FilterAll
	}
	s.activeFilter = tag
}
