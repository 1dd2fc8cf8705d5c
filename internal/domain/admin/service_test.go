package admin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type fakeFlagRepo struct {
	set    bool
	setErr error
	isErr  error
}

func (r *fakeFlagRepo) IsSet() (bool, error) {
	if r.isErr != nil {
		return false, r.isErr
	}
	return r.set, nil
}

func (r *fakeFlagRepo) Set() error {
	if r.setErr != nil {
		return r.setErr
	}
	r.set = true
	return nil
}

func (r *fakeFlagRepo) Clear() error {
	r.set = false
	return nil
}

func TestService_LoginLogout(t *testing.T) {
	repo := &fakeFlagRepo{}
	svc := NewService(repo, "dream2024", slog.Default())

	assert.False(t, svc.IsAuthenticated())

	assert.True(t, svc.Login("dream2024"))
	assert.True(t, svc.IsAuthenticated())
	assert.True(t, svc.CanEdit())

	require.NoError(t, svc.Logout())
	assert.False(t, svc.IsAuthenticated())
	assert.False(t, svc.CanEdit())
}

func TestService_LoginRejectsMismatchWithoutSideEffects(t *testing.T) {
	repo := &fakeFlagRepo{}
	svc := NewService(repo, "dream2024", slog.Default())

	assert.False(t, svc.Login("wrong"))
	assert.False(t, svc.Login(""))
	assert.False(t, repo.set)
	assert.False(t, svc.IsAuthenticated())
}

func TestService_FlagSurvivesServiceRestart(t *testing.T) {
	repo := &fakeFlagRepo{}

	first := NewService(repo, "dream2024", slog.Default())
	require.True(t, first.Login("dream2024"))

	// новий сервіс над тим самим сховищем бачить збережений прапорець
	second := NewService(repo, "dream2024", slog.Default())
	assert.True(t, second.IsAuthenticated())
}

func TestService_LoginFailsWhenFlagNotPersisted(t *testing.T) {
	repo := &fakeFlagRepo{setErr: errors.New("disk error")}
	svc := NewService(repo, "dream2024", slog.Default())

	assert.False(t, svc.Login("dream2024"))
}

func TestService_IsAuthenticatedDegradesOnRepoError(t *testing.T) {
	repo := &fakeFlagRepo{set: true, isErr: errors.New("disk error")}
	svc := NewService(repo, "dream2024", slog.Default())

	assert.False(t, svc.IsAuthenticated())
}
