package store

import (
	"testing"

	"github.com/alimgiray/gitfolio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepos(names ...string) []*models.Repository {
	repos := make([]*models.Repository, 0, len(names))
	for i, name := range names {
		repos = append(repos, models.NewRepository(int64(i+1), name, "https://github.com/octocat/"+name))
	}
	return repos
}

func TestViewStateStore_InitialState(t *testing.T) {
	s := NewViewStateStore()

	snap := s.Snapshot()
	assert.Empty(t, snap.Repositories)
	assert.Equal(t, FilterAll, snap.ActiveFilter)
}

func TestViewStateStore_RefreshLifecycle(t *testing.T) {
	t.Run("Busy flag blocks second refresh", func(t *testing.T) {
		s := NewViewStateStore()

		require.True(t, s.TryBeginRefresh())
		assert.False(t, s.TryBeginRefresh(), "second refresh must not start while one is outstanding")

		s.CompleteRefresh(testRepos("alpha"))
		assert.True(t, s.TryBeginRefresh(), "refresh allowed again after completion")
	})

	t.Run("Complete replaces repositories and resets filter", func(t *testing.T) {
		s := NewViewStateStore()
		require.True(t, s.TryBeginRefresh())
		s.CompleteRefresh(testRepos("alpha", "beta"))
		s.SetFilter("go")

		require.True(t, s.TryBeginRefresh())
		s.CompleteRefresh(testRepos("gamma"))

		snap := s.Snapshot()
		require.Len(t, snap.Repositories, 1)
		assert.Equal(t, "gamma", snap.Repositories[0].Name)
		assert.Equal(t, FilterAll, snap.ActiveFilter, "a successful fetch resets the filter")
	})

	t.Run("Abort keeps prior state", func(t *testing.T) {
		s := NewViewStateStore()
		require.True(t, s.TryBeginRefresh())
		s.CompleteRefresh(testRepos("alpha", "beta"))
		s.SetFilter("go")

		require.True(t, s.TryBeginRefresh())
		s.AbortRefresh()

		snap := s.Snapshot()
		require.Len(t, snap.Repositories, 2)
		assert.Equal(t, "alpha", snap.Repositories[0].Name)
		assert.Equal(t, "go", snap.ActiveFilter, "a failed fetch must not touch view state")

		assert.True(t, s.TryBeginRefresh(), "refresh allowed again after abort")
	})
}

func TestViewStateStore_SetFilter(t *testing.T) {
	s := NewViewStateStore()

	s.SetFilter("TypeScript")
	assert.Equal(t, "TypeScript", s.Snapshot().ActiveFilter)

	// Idempotent: applying the same tag again changes nothing.
	s.SetFilter("TypeScript")
	assert.Equal(t, "TypeScript", s.Snapshot().ActiveFilter)

	// An empty tag falls back to the identity filter.
	s.SetFilter("")
	assert.Equal(t, FilterAll, s.Snapshot().ActiveFilter)
}

func TestViewStateStore_SnapshotIsCopy(t *testing.T) {
	s := NewViewStateStore()
	require.True(t, s.TryBeginRefresh())
	s.CompleteRefresh(testRepos("alpha", "beta"))

	snap := s.Snapshot()
	snap.Repositories[0] = nil

	again := s.Snapshot()
	require.NotNil(t, again.Repositories[0])
	assert.Equal(t, "alpha", again.Repositories[0].Name)
}
