package play

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/they4kman/sweeper/game"
)

// saveSnapshot writes the final board to SavedSnapshotsDir, returning the
// path written, or "" when saving is disabled.
func (config Config) saveSnapshot(g *game.Game, t time.Time) (string, error) {
	if config.SavedSnapshotsDir == "" {
		return "", nil
	}

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", errors.Wrapf(err, "checking %s", config.SavedSnapshotsDir)
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			return "", errors.Wrapf(err, "creating %s", config.SavedSnapshotsDir)
		}
	} else if !stat.Mode().IsDir() {
		return "", errors.Errorf("%s is not a directory; cannot save snapshots to it", config.SavedSnapshotsDir)
	}

	path, err := uniquePath(config.SavedSnapshotsDir, generateReplayFilename(g, t))
	if err != nil {
		return "", err
	}

	if err := ioutil.WriteFile(path, []byte(g.Snapshot().Serialize()), 0666); err != nil {
		return "", errors.Wrapf(err, "writing snapshot %s", path)
	}
	return path, nil
}

func generateReplayFilename(g *game.Game, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch g.Status() {
	case game.Won:
		stateStr = "win"
	case game.Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	return filenameBuilder.String()
}

// uniquePath appends _1, _2, ... to base until the name is unused in dir
func uniquePath(dir, base string) (string, error) {
	for i := 0; ; i++ {
		name := base
		if i > 0 {
			name += "_" + strconv.Itoa(i)
		}
		path := filepath.Join(dir, name+".yaml")

		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			return path, nil
		}
		if err != nil {
			return "", errors.Wrapf(err, "checking %s", path)
		}
	}
}
