package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/play"
)

var flagConfig = play.NewConfig()
var configPath string

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Play manual or computer-driven Minesweeper in the terminal",
	Long: `sweeper is a terminal Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually
	sweeper

Use the director flag to make the computer play for you
	sweeper --director constraint
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if err := config.Validate(); err != nil {
			return err
		}

		level, _ := logrus.ParseLevel(config.LogLevel)
		game.Log.SetLevel(level)

		session, err := play.NewSession(config, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return session.Run(cmd.InOrStdin())
	},
}

// resolveConfig layers the config file, if any, under explicitly set flags
func resolveConfig(cmd *cobra.Command) (play.Config, error) {
	if configPath == "" {
		return flagConfig, nil
	}

	config := play.NewConfig()
	if err := play.LoadConfig(configPath, &config); err != nil {
		return config, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		config.Options.Cols = flagConfig.Options.Cols
	}
	if flags.Changed("height") {
		config.Options.Rows = flagConfig.Options.Rows
	}
	if flags.Changed("mines") {
		config.Options.Bombs = flagConfig.Options.Bombs
	}
	if flags.Changed("seed") {
		config.Seed = flagConfig.Seed
	}
	if flags.Changed("director") {
		config.Director = flagConfig.Director
	}
	if flags.Changed("snapshot") {
		config.SnapshotPath = flagConfig.SnapshotPath
	}
	if flags.Changed("snapshot-fresh") {
		config.LoadSnapshotFresh = flagConfig.LoadSnapshotFresh
	}
	if flags.Changed("save-dir") {
		config.SavedSnapshotsDir = flagConfig.SavedSnapshotsDir
	}
	if flags.Changed("log-level") {
		config.LogLevel = flagConfig.LogLevel
	}
	return config, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		game.Log.Error(err)
		os.Exit(1)
	}
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&flagConfig.Options.Cols, "width", "w", flagConfig.Options.Cols, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&flagConfig.Options.Rows, "height", "h", flagConfig.Options.Rows, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&flagConfig.Options.Bombs, "mines", "m", flagConfig.Options.Bombs, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&flagConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().StringVarP(&flagConfig.Director, "director", "d", "", `Make the computer play.
random: reveal random covered cells
constraint: play deduced moves, guessing only when stuck`)
	rootCmd.Flags().StringVar(&flagConfig.SnapshotPath, "snapshot", "", "Load the board from a saved snapshot")
	rootCmd.Flags().BoolVar(&flagConfig.LoadSnapshotFresh, "snapshot-fresh", true, "Cover every cell of the loaded snapshot")
	rootCmd.Flags().StringVar(&flagConfig.SavedSnapshotsDir, "save-dir", "", "Directory to save a snapshot of each finished game to")
	rootCmd.Flags().StringVar(&flagConfig.LogLevel, "log-level", flagConfig.LogLevel, "Logging level (debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file; flags given explicitly override it")
}
