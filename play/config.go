package play

import (
	"io/ioutil"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/they4kman/sweeper/director/constraint"
	"github.com/they4kman/sweeper/director/random"
	"github.com/they4kman/sweeper/game"
)

var log = game.Log.WithField("component", "play")

type Config struct {
	Options game.GameOptions `yaml:"board"`

	// Seed for mine placement; 0 picks one from the clock
	Seed int64 `yaml:"seed"`

	// Name of the automated player: "", "random" or "constraint"
	Director string `yaml:"director"`

	// Snapshot to load board configuration from
	SnapshotPath string `yaml:"snapshot"`
	// Whether to set all cells as covered when loading the snapshot
	LoadSnapshotFresh bool `yaml:"snapshot_fresh"`

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string `yaml:"saved_snapshots_dir"`

	LogLevel string `yaml:"log_level"`
}

func NewConfig() Config {
	return Config{
		Options: game.GameOptions{
			Rows:  16,
			Cols:  30,
			Bombs: 99,
		},
		LoadSnapshotFresh: true,
		LogLevel:          logrus.InfoLevel.String(),
	}
}

// LoadConfig overlays the YAML file at path onto config
func LoadConfig(path string, config *Config) error {
	in, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.UnmarshalStrict(in, config); err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}
	return nil
}

func (config Config) Validate() error {
	if config.SnapshotPath == "" {
		if err := config.Options.Validate(); err != nil {
			return err
		}
	}
	if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	switch config.Director {
	case "", "random", "constraint":
	default:
		return errors.Errorf("unknown director %q", config.Director)
	}
	return nil
}

func (config Config) newDirector(seed int64) game.Director {
	switch config.Director {
	case "random":
		return random.New(seed)
	case "constraint":
		return constraint.New(seed)
	default:
		return nil
	}
}

func (config Config) seed() int64 {
	if config.Seed != 0 {
		return config.Seed
	}
	return time.Now().UnixNano()
}

func (config Config) createGame(rng *rand.Rand) (*game.Game, error) {
	if config.SnapshotPath == "" {
		return game.CreateGame(config.Options, rng)
	}

	in, err := ioutil.ReadFile(config.SnapshotPath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading snapshot %s", config.SnapshotPath)
	}
	snapshot, err := game.LoadSnapshot(string(in))
	if err != nil {
		return nil, errors.Wrapf(err, "loading snapshot %s", config.SnapshotPath)
	}
	g, err := snapshot.Game(config.LoadSnapshotFresh)
	if err != nil {
		return nil, errors.Wrapf(err, "loading snapshot %s", config.SnapshotPath)
	}
	return g, nil
}
