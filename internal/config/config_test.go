package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mines.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "missing.json"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
	assert.True(t, config.Production())

	params, label, err := config.Params()
	require.NoError(t, err)
	assert.Equal(t, "MEDIUM", label)
	assert.Equal(t, mines.GameParams{Rows: 16, Cols: 16, MineCount: 40}, params)
}

func TestLoadMissingRequired(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), true)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `{
		"mode": "development",
		"difficulty": "hard",
		"seed": 42,
		"log": {"level": "debug", "file": "mines.log"}
	}`)

	config, err := Load(path, true)
	require.NoError(t, err)
	assert.True(t, config.Development())
	assert.Equal(t, uint64(42), config.Seed)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "mines.log", config.Log.File)
	// unset fields keep their defaults
	assert.Equal(t, 10, config.Log.MaxSizeMB)

	params, label, err := config.Params()
	require.NoError(t, err)
	assert.Equal(t, "HARD", label)
	assert.Equal(t, mines.GameParams{Rows: 16, Cols: 30, MineCount: 99}, params)

	assert.Equal(t, "hard", config.Fields()["difficulty"])
}

func TestLoadBadJSON(t *testing.T) {
	_, err := Load(writeConfig(t, `{"mode":`), false)
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("MINES_MODE", "development")
	t.Setenv("MINES_DIFFICULTY", "easy")
	t.Setenv("MINES_LOG_FILE", "/tmp/mines.log")

	config, err := Load(writeConfig(t, `{"mode": "production", "difficulty": "hard"}`), true)
	require.NoError(t, err)
	assert.Equal(t, "development", config.Mode)
	assert.Equal(t, "easy", config.Difficulty)
	assert.Equal(t, "/tmp/mines.log", config.Log.File)
}

func TestParamsCustomBoard(t *testing.T) {
	config := Default()
	config.Board = "rows=20&cols=24&mines=90"

	params, label, err := config.Params()
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM", label)
	assert.Equal(t, mines.GameParams{Rows: 20, Cols: 24, MineCount: 90}, params)
}

func TestParamsInvalidPreset(t *testing.T) {
	config := Default()
	config.Difficulty = "impossible"

	_, _, err := config.Params()
	assert.ErrorIs(t, err, ErrInvalidDifficultyPreset)
}
