package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestAdminRepository_FlagLifecycle(t *testing.T) {
	s := newTestStore(t, 1024)
	repo := NewAdminRepository(s)

	set, err := repo.IsSet()
	require.NoError(t, err)
	assert.False(t, set)

	require.NoError(t, repo.Set())
	set, err = repo.IsSet()
	require.NoError(t, err)
	assert.True(t, set)

	require.NoError(t, repo.Clear())
	set, err = repo.IsSet()
	require.NoError(t, err)
	assert.False(t, set)
}

func TestAdminRepository_FlagSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	s, err := New(path, 1024, slog.Default())
	require.NoError(t, err)
	require.NoError(t, NewAdminRepository(s).Set())
	require.NoError(t, s.Close())

	s, err = New(path, 1024, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	set, err := NewAdminRepository(s).IsSet()
	require.NoError(t, err)
	assert.True(t, set)
}
