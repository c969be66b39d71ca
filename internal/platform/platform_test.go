package platform

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFromNameIsStableAndInRange(t *testing.T) {
	first := portFromName("Tomatick")

	assert.Equal(t, first, portFromName("Tomatick"))
	assert.GreaterOrEqual(t, first, 20000)
	assert.LessOrEqual(t, first, 39999)
	assert.NotEqual(t, first, portFromName("Tomatick-dev"))
}

func TestSingleInstanceActivatesOwner(t *testing.T) {
	name := fmt.Sprintf("tomatick-test-%d", time.Now().UnixNano())
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	t.Cleanup(func() { _ = guard.Release() })

	var activations atomic.Int32
	guard.Serve(func() { activations.Add(1) })

	second, err := AcquireSingleInstance(name)
	assert.Nil(t, second)
	require.ErrorIs(t, err, ErrAlreadyRunning)
	assert.Contains(t, err.Error(), guard.Address())

	require.Eventually(t, func() bool { return activations.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
}

func TestReleaseFreesLock(t *testing.T) {
	name := fmt.Sprintf("tomatick-release-%d", time.Now().UnixNano())
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}

func TestNilGuard(t *testing.T) {
	var guard *InstanceGuard

	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
	guard.Serve(func() {})
}

func TestFallbackConfigDir(t *testing.T) {
	home := filepath.Join("home", "pat")

	assert.Equal(t, filepath.Join(home, ".config"), fallbackConfigDir("linux", home))
	assert.Equal(t, filepath.Join(home, "Library", "Application Support"), fallbackConfigDir("darwin", home))
	assert.Equal(t, filepath.Join(home, "AppData", "Roaming"), fallbackConfigDir("windows", home))
}

func TestGetConfigDirUsesXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	service := &platformService{goos: "linux"}
	got, err := service.GetConfigDir()

	require.NoError(t, err)
	assert.Equal(t, dir, got)
}
