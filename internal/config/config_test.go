package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"clip_size": 8, "bullets_in_clip": 8, "waves": 2}`), 0o600))

	tuning, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, tuning.ClipSize)
	assert.Equal(t, 2, tuning.Waves)
	assert.Equal(t, StartBulletsSpare, tuning.BulletsSpare)
}

func TestLoadRejectsInvalidTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"bullets_in_clip": 9}`), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "bullets_in_clip")
}

func TestValidateReportsEveryProblem(t *testing.T) {
	bad := Default()
	bad.FireRate = 0
	bad.PoolSize = 0
	bad.Waves = 0

	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "fire_rate")
	assert.ErrorContains(t, err, "projectile_pool_size")
	assert.ErrorContains(t, err, "waves")
}

func TestValidateArenaMustFitWalls(t *testing.T) {
	small := Default()
	small.ArenaWidth = 2 * small.TileSize
	assert.Error(t, small.Validate())
}
