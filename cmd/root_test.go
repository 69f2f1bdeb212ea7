package cmd

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/play"
)

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweeper.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("board: {rows: 9, cols: 9, bombs: 10}\nseed: 7\n"), 0666))

	defer func(saved play.Config, savedPath string) {
		flagConfig, configPath = saved, savedPath
	}(flagConfig, configPath)

	require.NoError(t, rootCmd.Flags().Parse([]string{"--config", path, "-m", "20"}))

	config, err := resolveConfig(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, game.GameOptions{Rows: 9, Cols: 9, Bombs: 20}, config.Options)
	assert.Equal(t, int64(7), config.Seed)
}
