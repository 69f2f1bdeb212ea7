package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	game := layoutGame(t,
		"O##f",
		"#.F#",
		"##*#",
	)
	game.status = Lost

	text := game.Snapshot().Serialize()
	snapshot, err := LoadSnapshot(text)
	require.NoError(t, err)
	assert.Equal(t, "lost", snapshot.Status)
	assert.Equal(t, "O##f\n#.F#\n##*#", snapshot.SerializedBoard)

	loaded, err := snapshot.Game(false)
	require.NoError(t, err)
	assert.Equal(t, game, loaded)
	assert.Equal(t, GameOptions{Rows: 3, Cols: 4, Bombs: 3}, loaded.Options())
	assert.Equal(t, 2, loaded.FlagCount())
}

func TestSnapshotFresh(t *testing.T) {
	snapshot := &Snapshot{Status: "lost", SerializedBoard: "*.\nfF"}

	game, err := snapshot.Game(true)
	require.NoError(t, err)
	assert.Equal(t, Playing, game.Status())
	assert.Equal(t, 0, game.FlagCount())
	assert.Equal(t, 2, game.CoveredSafeCells())
	for _, cell := range game.Board().Cells() {
		assert.Equal(t, Covered, cell.Status)
	}
	assert.True(t, mustCell(t, game, 0, 0).HasBomb)
	assert.True(t, mustCell(t, game, 1, 1).HasBomb)
	assert.Equal(t, 2, mustCell(t, game, 0, 1).NeighborBombs)
}

func TestSnapshotInvalid(t *testing.T) {
	for name, snapshot := range map[string]*Snapshot{
		"empty":       {SerializedBoard: ""},
		"ragged":      {SerializedBoard: "###\n##"},
		"bad code":    {SerializedBoard: "#x#"},
		"bad status":  {Status: "paused", SerializedBoard: "#"},
		"blank first": {SerializedBoard: "\n##"},
	} {
		_, err := snapshot.Game(false)
		assert.True(t, errors.Is(err, ErrInvalidSnapshot), "%s: %v", name, err)
	}
}

func TestLoadSnapshotBadYAML(t *testing.T) {
	_, err := LoadSnapshot("board: [unterminated")
	assert.Error(t, err)
}
