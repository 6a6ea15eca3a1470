package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the file", func(t *testing.T) {
		// Given: a config file with a custom roster
		path := writeConfig(t, `
log-level: debug
grid-size: 5
move-timeout: 3s
ai:
  my-streak-multiplier: 2
players:
  - name: Alice
    symbol: A
    kind: human
  - name: Bot
    symbol: B
    kind: random
redis:
  enabled: true
  host: cache
`)

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: values from the file and defaults are combined
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 5, conf.GridSize)
		assert.Equal(t, 3*time.Second, conf.MoveTimeout)
		assert.InDelta(t, 2.0, conf.AI.MyStreakMultiplier, 0)
		assert.InDelta(t, 1.0, conf.AI.EnemyStreakMultiplier, 0)
		assert.Equal(t, []Player{
			{Name: "Alice", Symbol: "A", Kind: KindHuman},
			{Name: "Bot", Symbol: "B", Kind: KindRandom},
		}, conf.Players)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)

		// Then: the default roster and an unbounded move time are used
		assert.Equal(t, DefaultPlayers(), conf.Players)
		assert.Equal(t, time.Duration(0), conf.MoveTimeout)
		assert.Equal(t, 0, conf.GridSize)
		assert.False(t, conf.Redis.Enabled)
	})

	t.Run("Error on unknown player kind", func(t *testing.T) {
		path := writeConfig(t, `
players:
  - name: Alice
    symbol: A
    kind: wizard
`)

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownPlayerKind)
	})
}

func TestPlayer_SymbolRune(t *testing.T) {
	assert.Equal(t, 'X', (&Player{Symbol: "X"}).SymbolRune())
	assert.Equal(t, '?', (&Player{}).SymbolRune())
}
